package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prashanthm/portfolio/internal/catalog"
	"github.com/prashanthm/portfolio/internal/session"
	"github.com/prashanthm/portfolio/internal/ui"
)

// pageData feeds index.html and the fragments it includes.
type pageData struct {
	ViewID   string
	Owner    string
	Greeting string
	Tagline  string
	About    string
	Email    string
	LinkedIn string
	Footer   string
	Projects []catalog.Project
	Links    []catalog.Link

	DropdownOpen bool
	Modal        *ui.ModalView
}

func newPageData(viewID string, p *ui.Page) pageData {
	data := pageData{
		ViewID:       viewID,
		Owner:        catalog.OwnerName,
		Greeting:     catalog.Greeting,
		Tagline:      catalog.Tagline,
		About:        catalog.AboutMe,
		Email:        catalog.ContactEmail,
		LinkedIn:     catalog.LinkedIn,
		Footer:       catalog.Footer(time.Now()),
		Projects:     p.Projects(),
		Links:        p.Links(),
		DropdownOpen: p.Dropdown.Open(),
	}
	if view, ok := p.ModalView(); ok {
		data.Modal = &view
	}
	return data
}

func (a *app) setupPortfolioRoutes(r *gin.Engine) {
	// Home page route; every load mounts a fresh view
	r.GET("/", func(c *gin.Context) {
		id, page := a.views.Mount()
		c.HTML(http.StatusOK, "index.html", newPageData(id, page))
	})

	views := r.Group("/ui/:view")

	views.POST("/dropdown/toggle", func(c *gin.Context) {
		a.renderView(c, "dropdown.html", func(p *ui.Page) error {
			p.ToggleDropdown()
			return nil
		})
	})

	// Outside-click dispatch from the document-level listener
	views.POST("/pointerdown", func(c *gin.Context) {
		target := ui.Target{Region: c.PostForm("region")}
		a.renderView(c, "dropdown.html", func(p *ui.Page) error {
			p.PointerDown(target)
			return nil
		})
	})

	views.POST("/projects/:index", func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.String(http.StatusNotFound, "unknown project")
			return
		}
		var title string
		ok := a.renderView(c, "modal.html", func(p *ui.Page) error {
			if err := p.SelectProject(index); err != nil {
				return err
			}
			title = p.Projects()[index].Title
			return nil
		})
		if ok && a.stats != nil {
			if err := a.stats.RecordProjectView(c.Request.Context(), title); err != nil {
				log.Printf("Error recording project view: %v", err)
			}
		}
	})

	views.POST("/modal/dismiss", func(c *gin.Context) {
		a.renderView(c, "modal.html", func(p *ui.Page) error {
			p.DismissModal()
			return nil
		})
	})

	views.POST("/unmount", func(c *gin.Context) {
		a.views.Unmount(c.Param("view"))
		c.Status(http.StatusNoContent)
	})

	views.GET("/state", func(c *gin.Context) {
		var snap ui.Snapshot
		err := a.views.Do(c.Param("view"), func(p *ui.Page) error {
			snap = p.Snapshot()
			return nil
		})
		if err != nil {
			a.viewError(c, err)
			return
		}
		c.JSON(http.StatusOK, snap)
	})
}

// renderView applies fn to the request's view and renders the fragment
// from the resulting state. It reports whether fn succeeded.
func (a *app) renderView(c *gin.Context, fragment string, fn func(*ui.Page) error) bool {
	id := c.Param("view")
	var data pageData
	err := a.views.Do(id, func(p *ui.Page) error {
		if err := fn(p); err != nil {
			return err
		}
		data = newPageData(id, p)
		return nil
	})
	if err != nil {
		a.viewError(c, err)
		return false
	}
	c.HTML(http.StatusOK, fragment, data)
	return true
}

func (a *app) viewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrUnknownView):
		// HTMX reloads the page, which mounts a new view.
		c.Header("HX-Refresh", "true")
		c.String(http.StatusGone, "view expired")
	case errors.Is(err, ui.ErrUnknownProject):
		c.String(http.StatusNotFound, "unknown project")
	default:
		log.Printf("Error handling view %s: %v", c.Param("view"), err)
		c.String(http.StatusInternalServerError, "internal error")
	}
}
