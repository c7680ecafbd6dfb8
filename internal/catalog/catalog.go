// Package catalog holds the portfolio's static content: the project
// catalog, the repository links and the page copy.
package catalog

import "slices"

// Project is one entry in the catalog. Its identity is its index.
type Project struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Details []string `json:"details"`
}

// Link is an external link opened in a new browsing context.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

var projects = []Project{
	{
		Title:   "Cybersecurity",
		Summary: "A personal portfolio site built with React and Tailwind CSS.",
		Details: []string{
			"Built using React and Tailwind",
			"Responsive design",
			"Deployed on Vercel",
		},
	},
	{
		Title:   "Task Manager App",
		Summary: "A task tracking app with drag-and-drop UI using React DnD.",
		Details: []string{
			"User authentication with Firebase",
			"Drag-and-drop tasks",
			"Dark mode support",
		},
	},
	{
		Title:   "Blog Platform",
		Summary: "A markdown-based blogging system built with Next.js.",
		Details: []string{
			"Static site generation",
			"Markdown content support",
			"SEO optimized pages",
		},
	},
}

// Placeholder user; these are sample links.
var repoLinks = []Link{
	{Label: "Cybersecurity", URL: "https://github.com/your-username/cybersecurity"},
	{Label: "Task Manager", URL: "https://github.com/your-username/task-manager"},
	{Label: "Blog Platform", URL: "https://github.com/your-username/blog-platform"},
}

// Projects returns the catalog in display order. The result is a copy.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}

// Lookup returns the project at index i.
func Lookup(i int) (Project, bool) {
	if i < 0 || i >= len(projects) {
		return Project{}, false
	}
	return projects[i].clone(), true
}

// RepoLinks returns the links listed in the GitHub dropdown.
func RepoLinks() []Link {
	return slices.Clone(repoLinks)
}

func (p Project) clone() Project {
	p.Details = slices.Clone(p.Details)
	return p
}
