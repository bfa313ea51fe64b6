package dashboard

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ambient-dashboard/internal/config"
)

var ErrUnknownRoute = errors.New("unknown route")

// Page is one screen reachable from the sidebar.
type Page interface {
	Route() string
	Title() string
	// Update handles input aimed at the content area.
	Update(in Input) error
	// Draw paints the page inside area.
	Draw(screen *ebiten.Image, area image.Rectangle)
}

type navEntry struct {
	title string
	route string
	rect  image.Rectangle
}

// Sidebar is the navigation panel shared by every page.
type Sidebar struct {
	brand   string
	entries []navEntry
}

func NewSidebar(brand string, pages []Page) *Sidebar {
	s := &Sidebar{brand: brand}
	for i, p := range pages {
		y := config.NavTop + i*config.NavEntryHeight
		s.entries = append(s.entries, navEntry{
			title: p.Title(),
			route: p.Route(),
			rect: image.Rect(
				config.SidebarPadding, y,
				config.SidebarWidth-config.SidebarPadding, y+config.NavEntryHeight-4,
			),
		})
	}
	return s
}

// HitTest returns the route of the entry under p.
func (s *Sidebar) HitTest(p image.Point) (string, bool) {
	for _, e := range s.entries {
		if p.In(e.rect) {
			return e.route, true
		}
	}
	return "", false
}

func (s *Sidebar) Draw(screen *ebiten.Image, active string) {
	h := screen.Bounds().Dy()
	fillRect(screen, image.Rect(0, 0, config.SidebarWidth, h), panelColor)
	drawTextScaled(screen, s.brand, config.SidebarPadding, 24, 2, accentColor)

	for i, e := range s.entries {
		clr := mutedColor
		if e.route == active {
			fillRect(screen, e.rect, withAlpha(accentColor, 48))
			clr = textColor
		}
		label := fmt.Sprintf("%d  %s", i+1, e.title)
		drawText(screen, label, e.rect.Min.X+10, e.rect.Min.Y+(e.rect.Dy()-13)/2, clr)
	}
}

// Shell routes input to the sidebar or the active page.
type Shell struct {
	pages   []Page
	byRoute map[string]int
	current int
	sidebar *Sidebar
}

func NewShell(brand string, pages ...Page) (*Shell, error) {
	if len(pages) == 0 {
		return nil, errors.New("shell needs at least one page")
	}
	byRoute := make(map[string]int, len(pages))
	for i, p := range pages {
		if _, dup := byRoute[p.Route()]; dup {
			return nil, fmt.Errorf("duplicate route %q", p.Route())
		}
		byRoute[p.Route()] = i
	}
	return &Shell{
		pages:   pages,
		byRoute: byRoute,
		sidebar: NewSidebar(brand, pages),
	}, nil
}

func (s *Shell) Current() Page { return s.pages[s.current] }

func (s *Shell) Navigate(route string) error {
	i, ok := s.byRoute[route]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	s.current = i
	return nil
}

func (s *Shell) Update(in Input) error {
	if in.Digit >= 1 && in.Digit <= len(s.pages) {
		s.current = in.Digit - 1
	}
	if in.Cursor.X < config.SidebarWidth {
		if in.JustPressed {
			if route, ok := s.sidebar.HitTest(in.Cursor); ok {
				return s.Navigate(route)
			}
		}
		if !in.JustReleased {
			return nil
		}
		// a release over the sidebar still ends a press that began on the page
	}
	return s.Current().Update(in)
}

// ContentArea is the part of bounds to the right of the sidebar, inset by the padding.
func ContentArea(bounds image.Rectangle) image.Rectangle {
	r := bounds
	r.Min.X += config.SidebarWidth
	return r.Inset(config.ContentPadding)
}

func (s *Shell) Draw(screen *ebiten.Image) {
	s.sidebar.Draw(screen, s.Current().Route())
	s.Current().Draw(screen, ContentArea(screen.Bounds()))
}
