package catalog

import (
	"fmt"
	"time"
)

var (
	OwnerName = "Prashanth Mudigonda"

	Greeting = "Hello, I'm Prashanth"

	Tagline = `A frontend developer focused on building clean, responsive, and
	user-friendly interfaces.`

	AboutMe = `I’m a passionate Cybersecurity student with a strong foundation in network security,
	ethical hacking, and threat analysis. I’m driven by a deep interest in understanding how systems
	work—and how they can be protected from evolving threats. I enjoy working on hands-on projects
	that involve vulnerability assessment, penetration testing, and implementing secure solutions.
	Currently, I’m expanding my skills in areas like cloud security, digital forensics, and secure coding.
	I thrive in problem-solving environments and continuously seek opportunities to learn and contribute
	to real-world security challenges. Whether working independently or as part of a team, I bring a
	detail-oriented and ethical approach to everything I do. Let’s connect if you’re looking for someone
	eager to grow and contribute to building a safer digital future.`

	ContactEmail = "johndoe@example.com"

	LinkedIn = "linkedin.com/in/johndoe"

	CopyrightHolder = "John Doe"
)

// Footer returns the copyright line for the given time.
func Footer(now time.Time) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), CopyrightHolder)
}
