package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"unhook/internal/catalog"
	"unhook/internal/constants"
	"unhook/internal/journeys"
	"unhook/internal/models"
	"unhook/internal/reminders"
	"unhook/internal/storage"
	"unhook/internal/tui/components/journeylist"
)

type JourneyFormModel struct {
	SubstanceID string
	Reason      string
}

type Model struct {
	store           storage.Provider
	journeys        *journeys.Service
	reminders       *reminders.Scheduler
	state           constants.SessionState
	previousState   constants.SessionState
	keys            KeyMap
	help            help.Model
	journeyList     journeylist.Model
	form            *huh.Form
	journeyForm     *JourneyFormModel
	activeJourneyID string
	introPage       int
	journeyToDelete string
	formError       string
	statusMessage   string
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider, svc *journeys.Service, sched *reminders.Scheduler) Model {
	all, err := svc.List()
	if err != nil {
		all = []models.Journey{}
	}

	return Model{
		store:       store,
		journeys:    svc,
		reminders:   sched,
		state:       constants.StateJourneys,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		journeyList: journeylist.New(all, time.Now(), 0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// activeJourney resolves the journey the daily and timeline states act on.
func (m Model) activeJourney() (models.Journey, bool) {
	if m.activeJourneyID == "" {
		return models.Journey{}, false
	}
	return m.journeys.Get(m.activeJourneyID)
}

// activeSubstance returns the catalog entry backing the active journey.
func (m Model) activeSubstance() (catalog.Substance, bool) {
	journey, ok := m.activeJourney()
	if !ok {
		return catalog.Substance{}, false
	}
	return catalog.Get(journey.SubstanceID)
}

func (m *Model) refreshJourneys() {
	all, err := m.journeys.List()
	if err != nil {
		return
	}
	m.journeyList.SetJourneys(all, time.Now())
}

func newJourneyForm(fm *JourneyFormModel) *huh.Form {
	options := make([]huh.Option[string], 0, len(catalog.IDs()))
	for _, id := range catalog.IDs() {
		sub, _ := catalog.Get(id)
		options = append(options, huh.NewOption(sub.Icon+" "+sub.Name, id))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you quitting?").
				Options(options...).
				Value(&fm.SubstanceID),
			huh.NewText().
				Title("Why are you quitting?").
				Description("You'll see this every day. Make it count.").
				CharLimit(constants.MaxReasonLen).
				Value(&fm.Reason),
		),
	)
}
