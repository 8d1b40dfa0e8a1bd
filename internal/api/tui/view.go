package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osa030/vinylshelf/internal/app/browse"
	"github.com/osa030/vinylshelf/internal/app/pager"
	"github.com/osa030/vinylshelf/internal/app/search"
	"github.com/osa030/vinylshelf/internal/app/session/state"
	"github.com/osa030/vinylshelf/internal/domain/catalog"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	snap := m.session.Snapshot()
	b.WriteString(titleStyle.Render("vinylshelf"))
	b.WriteString("  ")
	b.WriteString(hashStyle.Render(snap.Hash))
	b.WriteString("\n\n")

	if d, open := m.session.Modal(); open {
		b.WriteString(renderDetail(d))
	} else {
		switch snap.State.View {
		case state.ViewArtists:
			b.WriteString(m.renderArtists())
		case state.ViewAlbums:
			b.WriteString(m.renderAlbums())
		case state.ViewTracks:
			b.WriteString(m.renderTracks())
		case state.ViewSearch:
			b.WriteString(m.renderSearch())
		}
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(infoStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.mode != modeBrowse {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	return b.String()
}

// row renders one list row, highlighted under the cursor.
func (m Model) row(i int, primary, secondary string) string {
	prefix := "  "
	line := primary
	if i == m.cursor {
		prefix = "> "
		line = selectedStyle.Render(primary)
	}
	if secondary != "" {
		line += "  " + secondaryStyle.Render(secondary)
	}
	return prefix + line + "\n"
}

func (m Model) renderArtists() string {
	var b strings.Builder
	v := m.session.Artists()

	heading := "Artists"
	if v.Initial != "" {
		heading += " · " + v.Initial.String()
	}
	b.WriteString(headingStyle.Render(heading))
	b.WriteString("\n")

	if v.Info != "" {
		b.WriteString(infoStyle.Render(v.Info))
		b.WriteString("\n")
	}
	for i, a := range v.Page.Items {
		b.WriteString(m.row(i, a.Name, fmt.Sprintf("%d albums", a.AlbumCount)))
	}
	b.WriteString(renderPager(v.Page.Number, v.Page.TotalPages, v.Page.Window))
	return b.String()
}

func (m Model) renderAlbums() string {
	var b strings.Builder
	v := m.session.Albums()

	b.WriteString(headingStyle.Render("Albums · " + v.Artist))
	b.WriteString("\n")
	if v.Info != "" {
		b.WriteString(infoStyle.Render(v.Info))
		b.WriteString("\n")
	}
	for i, a := range v.Albums {
		b.WriteString(m.row(i, a.Title, browse.AlbumLine(a)))
	}
	return b.String()
}

func (m Model) renderTracks() string {
	var b strings.Builder
	v := m.session.Tracks()

	b.WriteString(headingStyle.Render("Tracks · " + v.Album.Title))
	b.WriteString("\n")
	if v.Info != "" {
		b.WriteString(infoStyle.Render(v.Info))
		b.WriteString("\n")
	}
	for i, t := range v.Tracks {
		title := t.Title
		if t.TrackNo != "" {
			title = t.TrackNo + ". " + title
		}
		b.WriteString(m.row(i, title, browse.TrackLine(t)))
	}
	return b.String()
}

func (m Model) renderSearch() string {
	var b strings.Builder
	v := m.session.SearchResults()

	b.WriteString(headingStyle.Render("Search · " + v.Query))
	b.WriteString("\n")
	b.WriteString(renderFilters(v.Filters))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(v.Info))
	b.WriteString("\n")

	for i, r := range v.Page.Items {
		primary := fmt.Sprintf("[%s] %s", r.Type, r.Primary)
		secondary := r.Secondary
		if len(r.Tags) > 0 {
			secondary += "  " + tagStyle.Render("#"+strings.Join(r.Tags, " #"))
		}
		b.WriteString(m.row(i, primary, secondary))
	}
	b.WriteString(renderPager(v.Page.Number, v.Page.TotalPages, v.Page.Window))
	return b.String()
}

// renderFilters renders the toggles as numbered chips.
func renderFilters(f search.Filters) string {
	chips := make([]string, 0, len(search.Order()))
	for i, name := range search.Order() {
		label := fmt.Sprintf("%d %s", i+1, name)
		if f.Enabled(name) {
			chips = append(chips, activeChipStyle.Render(label))
		} else {
			chips = append(chips, chipStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// renderPager renders the page numbers of the visible window.
func renderPager(current, total int, w pager.Window) string {
	if total <= 1 {
		return ""
	}
	var parts []string
	if current > 1 {
		parts = append(parts, "‹")
	}
	for p := w.Start; p <= w.End; p++ {
		label := fmt.Sprint(p)
		if p == current {
			label = selectedStyle.Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	if current < total {
		parts = append(parts, "›")
	}
	return "\n" + hashStyle.Render(fmt.Sprintf("page %d/%d  ", current, total)) + strings.Join(parts, " ") + "\n"
}

// renderDetail renders the track detail overlay.
func renderDetail(d catalog.Detail) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("%-9s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}
	field("Artist", d.Artist)
	field("Album", d.Album)
	field("Track", d.TrackNo)
	field("Genre", d.Genre)
	field("Location", d.Location)
	field("Note", d.Note)
	if len(d.Tags) > 0 {
		field("Tags", tagStyle.Render("#"+strings.Join(d.Tags, " #")))
	}
	b.WriteString("\n")
	b.WriteString(hashStyle.Render("x close · esc back"))
	return modalStyle.Render(b.String())
}
