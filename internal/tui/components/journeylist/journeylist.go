package journeylist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"unhook/internal/catalog"
	"unhook/internal/models"
	"unhook/internal/progress"
)

type NewJourneyMsg struct{}

type OpenJourneyMsg struct {
	ID string
}

type DeleteJourneyMsg struct {
	ID string
}

type TimelineMsg struct {
	ID string
}

type Item struct {
	Journey   models.Journey
	Day       int
	Substance catalog.Substance
}

func (i Item) Title() string {
	title := i.Substance.Icon + " " + i.Substance.Name
	if !i.Journey.HasReadIntro {
		return title + " (setup)"
	}
	return title
}

func (i Item) Description() string {
	if !i.Journey.HasReadIntro {
		return "intro not read yet"
	}
	return fmt.Sprintf("day %d", i.Day)
}

func (i Item) FilterValue() string { return i.Substance.Name }

type KeyMap struct {
	New      key.Binding
	Open     key.Binding
	Delete   key.Binding
	Timeline key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Timeline: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "timeline"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(journeys []models.Journey, now time.Time, width, height int) Model {
	l := list.New(toItems(journeys, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Journeys"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.New, keys.Open, keys.Timeline, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.New, keys.Open, keys.Timeline, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(journeys []models.Journey, now time.Time) []list.Item {
	items := make([]list.Item, len(journeys))
	for i, j := range journeys {
		sub, _ := catalog.Get(j.SubstanceID)
		items[i] = Item{
			Journey:   j,
			Day:       progress.DayCount(j.StartDate, now),
			Substance: sub,
		}
	}
	return items
}

func (m *Model) SetJourneys(journeys []models.Journey, now time.Time) {
	m.list.SetItems(toItems(journeys, now))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.New):
			return m, func() tea.Msg { return NewJourneyMsg{} }
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenJourneyMsg{ID: i.Journey.ID} }
			}
		case key.Matches(msg, m.keys.Timeline):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Journey.HasReadIntro {
					return m, func() tea.Msg { return TimelineMsg{ID: i.Journey.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteJourneyMsg{ID: i.Journey.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No journeys yet.\n  Press 'n' to start one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
