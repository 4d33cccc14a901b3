package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"unhook/internal/constants"
	"unhook/internal/tui/components/journeylist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle New Journey State
	if m.state == constants.StateNewJourney {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateJourneys
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			journey, err := m.journeys.Start(m.journeyForm.SubstanceID, m.journeyForm.Reason)
			if err != nil {
				// Stay in form state to allow retry
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refreshJourneys()
			m.activeJourneyID = journey.ID
			m.introPage = 0
			m.state = constants.StateOnboarding
		case huh.StateAborted:
			m.formError = ""
			m.state = constants.StateJourneys
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.journeys.Delete(m.journeyToDelete); err != nil {
					m.state = constants.StateJourneys
					m.journeyToDelete = ""
					return m, nil
				}
				if m.activeJourneyID == m.journeyToDelete {
					m.activeJourneyID = ""
				}
				m.refreshJourneys()
				m.state = constants.StateJourneys
				m.journeyToDelete = ""
			case "n", "N", "esc", "q":
				m.state = m.previousState
				m.journeyToDelete = ""
			}
		}
		return m, nil
	}

	// Handle Onboarding State
	if m.state == constants.StateOnboarding {
		sub, ok := m.activeSubstance()
		if !ok {
			m.state = constants.StateJourneys
			return m, nil
		}
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Back):
				m.state = constants.StateJourneys
				return m, nil
			case key.Matches(msg, m.keys.Prev):
				if m.introPage > 0 {
					m.introPage--
				}
				return m, nil
			case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Enter):
				if m.introPage < len(sub.Introduction.Sections)-1 {
					m.introPage++
					return m, nil
				}
				// Last page: marking the intro read unlocks the daily
				// view and arms the morning reminder.
				if err := m.journeys.MarkIntroRead(m.activeJourneyID); err != nil {
					m.formError = err.Error()
					return m, nil
				}
				journey, found := m.activeJourney()
				if found {
					_, scheduled, err := m.reminders.ScheduleMorning(journey)
					switch {
					case err != nil:
						m.statusMessage = fmt.Sprintf("Could not schedule reminder: %v", err)
					case scheduled:
						m.statusMessage = "Morning reminder scheduled."
					default:
						m.statusMessage = "Notifications are off; no reminder scheduled."
					}
				}
				m.refreshJourneys()
				m.state = constants.StateDaily
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		listHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.journeyList.SetSize(msg.Width-h, listHeight-v)

	case journeylist.NewJourneyMsg:
		m.journeyForm = &JourneyFormModel{}
		m.form = newJourneyForm(m.journeyForm)
		m.state = constants.StateNewJourney
		return m, m.form.Init()

	case journeylist.OpenJourneyMsg:
		journey, ok := m.journeys.Get(msg.ID)
		if !ok {
			m.refreshJourneys()
			return m, nil
		}
		m.activeJourneyID = journey.ID
		m.statusMessage = ""
		if journey.HasReadIntro {
			m.state = constants.StateDaily
		} else {
			m.introPage = 0
			m.state = constants.StateOnboarding
		}
		return m, nil

	case journeylist.TimelineMsg:
		m.activeJourneyID = msg.ID
		m.previousState = constants.StateJourneys
		m.state = constants.StateTimeline
		return m, nil

	case journeylist.DeleteJourneyMsg:
		m.journeyToDelete = msg.ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Back):
			switch m.state {
			case constants.StateDaily:
				m.statusMessage = ""
				m.state = constants.StateJourneys
			case constants.StateTimeline:
				m.state = m.previousState
			}
			return m, nil
		}

		if m.state == constants.StateDaily {
			switch {
			case key.Matches(msg, m.keys.CheckIn):
				if err := m.journeys.RecordCheckIn(m.activeJourneyID); err != nil {
					m.statusMessage = fmt.Sprintf("Check-in failed: %v", err)
				} else {
					m.statusMessage = "Checked in. See you tomorrow. 💪"
					m.refreshJourneys()
				}
				return m, nil
			case key.Matches(msg, m.keys.Timeline):
				m.previousState = constants.StateDaily
				m.state = constants.StateTimeline
				return m, nil
			case key.Matches(msg, m.keys.Delete):
				m.journeyToDelete = m.activeJourneyID
				m.previousState = constants.StateDaily
				m.state = constants.StateConfirmDelete
				return m, nil
			}
		}
	}

	if m.state == constants.StateJourneys {
		var cmd tea.Cmd
		m.journeyList, cmd = m.journeyList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
