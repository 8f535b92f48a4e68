package ui

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mbeltrami/lungomare/internal/engine"
	"github.com/mbeltrami/lungomare/internal/store"
	"github.com/mbeltrami/lungomare/internal/text"
	"github.com/mbeltrami/lungomare/internal/util"
)

const (
	viewMainMenu = "main_menu"
	viewScene    = "scene"
	viewPaperWar = "paperwar"
	viewShop     = "shop"
	viewJournal  = "journal"
	viewEnding   = "ending"
	viewHelp     = "help"
)

var seedEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

type model struct {
	ctx     context.Context
	cfg     util.Config
	version string

	run   *engine.RunState
	view  string
	theme string
	pal   palette

	// outcome: rendered markdown of the last resolution, shown under the scene
	outcome string
	status  string

	seedInput textinput.Model
	journal   viewport.Model
	journalMD string

	// persistence (nil db disables it)
	db    *store.DB
	runID uuid.UUID

	width  int
	height int
}

func randomSeedText() string {
	buf := make([]byte, 15)
	if _, err := rand.Read(buf); err != nil {
		return "fallback-seed"
	}
	return strings.ToLower(seedEncoding.EncodeToString(buf))
}

func initialModel(ctx context.Context, db *store.DB, cfg util.Config, version string) model {
	ti := textinput.New()
	ti.Placeholder = "seed (blank for random)"
	ti.CharLimit = 64
	ti.SetValue(cfg.SeedText)
	ti.Focus()

	vp := viewport.New(80, 20)

	m := model{
		ctx:       ctx,
		cfg:       cfg,
		version:   version,
		view:      viewMainMenu,
		theme:     cfg.Theme,
		db:        db,
		seedInput: ti,
		journal:   vp,
	}
	if m.theme == "" {
		m.theme = "notte"
	}
	m.pal = paletteFor(m.theme)
	return m
}

// startRun boots a fresh run from the seed input, creating the DB record when
// persistence is on.
func (m *model) startRun() {
	seedText := strings.TrimSpace(m.seedInput.Value())
	if seedText == "" {
		seedText = randomSeedText()
		m.seedInput.SetValue(seedText)
	}
	seed, err := engine.NewRunSeed(seedText)
	if err != nil {
		m.status = "invalid seed"
		return
	}
	m.run = engine.NewRun(seed)
	m.outcome = ""
	m.journalMD = ""
	m.status = ""
	m.runID = uuid.Nil
	if m.db != nil {
		if rec, err := store.NewRunRepo(m.db).Create(m.ctx, seedText); err == nil {
			m.runID = rec.ID
		} else {
			m.status = "persistence off: " + err.Error()
		}
	}
	m.view = viewScene
}

// continueRun restores the most recently touched run from the store.
func (m *model) continueRun() {
	if m.db == nil {
		m.status = "no database configured"
		return
	}
	recs, err := store.NewRunRepo(m.db).Recent(m.ctx, 1)
	if err != nil || len(recs) == 0 {
		m.status = "no run to continue"
		return
	}
	rec := recs[0]
	snap, err := store.NewSnapshotRepo(m.db).Load(m.ctx, rec.ID)
	if err != nil {
		m.status = "load failed: " + err.Error()
		return
	}
	if snap == nil {
		// No usable snapshot; a fresh run under the stored seed is the fallback.
		seed, err := engine.NewRunSeed(rec.SeedText)
		if err != nil {
			m.status = "stored seed invalid"
			return
		}
		m.run = engine.NewRun(seed)
	} else {
		restored, err := engine.RestoreRun(*snap)
		if err != nil {
			m.status = "restore failed: " + err.Error()
			return
		}
		m.run = restored
	}
	m.runID = rec.ID
	m.outcome = ""
	m.journalMD = ""
	m.status = ""
	if m.run.Ending != nil {
		m.view = viewEnding
		return
	}
	m.view = viewScene
}

func (m *model) persist() {
	if m.db == nil || m.runID == uuid.Nil || m.run == nil {
		return
	}
	_ = store.NewSnapshotRepo(m.db).Save(m.ctx, m.runID, m.run.Snapshot())
	ending := ""
	if m.run.Ending != nil {
		ending = string(m.run.Ending.ID)
	}
	_ = store.NewRunRepo(m.db).Touch(m.ctx, m.runID, m.run.Day, ending)
}

func (m *model) appendJournal(md string) {
	entry := fmt.Sprintf("### Day %d, %s\n\n%s\n", m.run.Day, m.run.Phase, md)
	m.journalMD += entry + "\n"
	if m.db == nil || m.runID == uuid.Nil {
		return
	}
	eventID := ""
	if m.run.Event != nil {
		eventID = m.run.Event.ID
	}
	repo := store.NewJournalRepo(m.db)
	_ = m.db.WithTx(m.ctx, func(tx *gorm.DB) error {
		_, err := repo.Append(m.ctx, tx, store.JournalEntry{
			RunID:    m.runID,
			Day:      m.run.Day,
			Phase:    string(m.run.Phase),
			EventID:  eventID,
			Markdown: md,
		})
		return err
	})
}

// advance moves to the next phase and checks for an ending at morning.
func (m *model) advance() {
	if m.run.Phase == engine.PhaseMorning {
		m.appendJournal(text.MorningReport(m.run))
	}
	m.run.AdvancePhase()
	m.outcome = ""
	m.status = ""
	if m.run.Phase == engine.PhaseMorning {
		if e := m.run.EvaluateEnding(); e != nil {
			m.appendJournal(text.EndingCard(e, m.run))
			m.persist()
			m.view = viewEnding
			return
		}
	}
	m.persist()
}

func (m *model) resolveChoice(idx int) {
	ev := m.run.PickEvent()
	if ev == nil {
		return
	}
	if ev.PaperWar {
		m.view = viewPaperWar
		return
	}
	res, ok := m.run.Resolve(idx)
	if !ok {
		return
	}
	m.outcome = text.Outcome(res)
	m.appendJournal(m.outcome)
	m.persist()
}

func (m *model) playMove(move engine.Move) {
	tally, ok := m.run.PlayPaperWarRound(move)
	if !ok {
		return
	}
	last := tally.Rounds[len(tally.Rounds)-1]
	m.status = fmt.Sprintf("round %d: %s vs %s, %s", len(tally.Rounds), last.Player, last.Opponent, last.Verdict)
	if len(tally.Rounds) >= engine.PaperWarRounds {
		m.outcome = text.Outcome(tally.Resolution(m.run.Paths))
		m.appendJournal(m.outcome)
		m.persist()
		m.view = viewScene
	}
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.journal.Width = msg.Width - 4
		m.journal.Height = msg.Height - 4
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.view == viewJournal {
		var cmd tea.Cmd
		m.journal, cmd = m.journal.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewMainMenu:
		switch k {
		case "enter":
			m.startRun()
			return m, nil
		case "ctrl+r":
			m.seedInput.SetValue(randomSeedText())
			return m, nil
		case "ctrl+o":
			m.continueRun()
			return m, nil
		case "ctrl+t":
			m.theme = nextThemeName(m.theme)
			m.pal = paletteFor(m.theme)
			return m, nil
		case "ctrl+h":
			m.view = viewHelp
			return m, nil
		case "esc":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.seedInput, cmd = m.seedInput.Update(msg)
		return m, cmd

	case viewScene:
		switch k {
		case "q":
			return m, tea.Quit
		case " ", "enter":
			m.advance()
			return m, nil
		case "b":
			m.view = viewShop
			return m, nil
		case "j":
			m.journal.SetContent(m.renderMarkdown(m.journalMD))
			m.journal.GotoBottom()
			m.view = viewJournal
			return m, nil
		case "?":
			m.view = viewHelp
			return m, nil
		case "t":
			m.theme = nextThemeName(m.theme)
			m.pal = paletteFor(m.theme)
			return m, nil
		}
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			m.resolveChoice(int(k[0] - '1'))
		}
		return m, nil

	case viewPaperWar:
		switch k {
		case "s":
			m.playMove(engine.MoveStamp)
		case "l":
			m.playMove(engine.MoveLedger)
		case "e":
			m.playMove(engine.MoveSeal)
		case "esc", "q":
			if m.run.Resolved {
				m.view = viewScene
			}
		}
		return m, nil

	case viewShop:
		switch {
		case k == "esc" || k == "q" || k == "b":
			m.view = viewScene
		case len(k) == 1 && k[0] >= '1' && k[0] <= '9':
			items := engine.Items()
			idx := int(k[0] - '1')
			if idx < len(items) {
				if m.run.BuyItem(items[idx].ID) {
					m.status = "bought " + items[idx].Name
				} else {
					m.status = "cannot buy " + items[idx].Name
				}
			}
		case k == "u":
			// use the first held consumable
			for _, it := range m.run.Inventory {
				if it.Kind == engine.ItemConsumable {
					if m.run.UseItem(it.ID) {
						m.status = "used " + it.Name
					}
					break
				}
			}
		}
		return m, nil

	case viewJournal:
		switch k {
		case "esc", "q", "j":
			m.view = viewScene
			return m, nil
		}
		var cmd tea.Cmd
		m.journal, cmd = m.journal.Update(msg)
		return m, cmd

	case viewEnding:
		switch k {
		case "n":
			m.view = viewMainMenu
			m.seedInput.SetValue("")
			m.seedInput.Focus()
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil

	case viewHelp:
		if k == "esc" || k == "q" || k == "?" {
			if m.run != nil && m.run.Ending == nil {
				m.view = viewScene
			} else {
				m.view = viewMainMenu
			}
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	switch m.view {
	case viewMainMenu:
		return m.renderMainMenu()
	case viewScene:
		return m.renderScene()
	case viewPaperWar:
		return m.renderPaperWar()
	case viewShop:
		return m.renderShop()
	case viewJournal:
		return m.renderJournal()
	case viewEnding:
		return m.renderEnding()
	case viewHelp:
		return m.renderHelp()
	}
	return ""
}

// Rendering ------------------------------------------------------------------

func (m model) renderMarkdown(md string) string {
	style := glamour.WithAutoStyle()
	if m.theme == "riviera" {
		style = glamour.WithStandardStyle("light")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(m.contentWidth()))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m model) contentWidth() int {
	if m.width > 8 {
		return m.width - 4
	}
	return 96
}

func (m model) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(m.pal.Accent)
}

func (m model) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(m.pal.Muted)
}

func (m model) boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(m.pal.Border).Padding(1, 2)
}

func (m model) renderMainMenu() string {
	var b strings.Builder
	b.WriteString(m.titleStyle().Render("LUNGOMARE") + "  " + m.hintStyle().Render("v"+m.version) + "\n\n")
	b.WriteString("A pensione on the off-season coast. Thirty days, three ledgers, one tide.\n\n")
	b.WriteString("Seed: " + m.seedInput.View() + "\n\n")
	b.WriteString(m.hintStyle().Render("[enter] new run  [ctrl+o] continue  [ctrl+r] random seed  [ctrl+t] theme  [ctrl+h] help  [esc] quit"))
	if m.status != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(m.pal.Warning).Render(m.status))
	}
	return m.boxStyle().Width(72).Render(b.String())
}

func (m model) renderScene() string {
	if m.run == nil {
		return "no run"
	}
	var body string
	if m.run.Phase == engine.PhaseMorning {
		body = text.MorningReport(m.run)
	} else {
		body = text.Scene(m.run, m.run.PickEvent())
	}
	out := m.renderMarkdown(body)
	if m.outcome != "" {
		out += "\n" + m.renderMarkdown(m.outcome)
	}
	hints := "[1-9] choose  [space] advance  [b] shop  [j] journal  [t] theme  [?] help  [q] quit"
	footer := m.hintStyle().Render(hints)
	if m.status != "" {
		footer += "\n" + lipgloss.NewStyle().Foreground(m.pal.Warning).Render(m.status)
	}
	return out + "\n" + footer
}

func (m model) renderPaperWar() string {
	var b strings.Builder
	b.WriteString(m.titleStyle().Render("PAPER WAR") + "\n\n")
	b.WriteString("Three rounds at the counter. Stamp smothers seal, seal binds ledger,\nledger buries stamp.\n\n")
	if m.run.Event != nil {
		b.WriteString(m.run.Event.Text + "\n\n")
	}
	if m.status != "" {
		b.WriteString(m.status + "\n\n")
	}
	if m.run.Resolved {
		b.WriteString(m.hintStyle().Render("[esc] back"))
	} else {
		b.WriteString(m.hintStyle().Render("[s] stamp  [l] ledger  [e] seal"))
	}
	return m.boxStyle().Width(64).Render(b.String())
}

func (m model) renderShop() string {
	var b strings.Builder
	b.WriteString(m.titleStyle().Render("TABACCHI") + "\n\n")
	fmt.Fprintf(&b, "₤%d on hand\n\n", m.run.Stats.Money)
	for i, it := range engine.Items() {
		held := ""
		for _, h := range m.run.Inventory {
			if h.ID == it.ID {
				held = " (held)"
				break
			}
		}
		fmt.Fprintf(&b, "[%d] %-24s ₤%-4d %s%s\n", i+1, it.Name, it.Price, it.Kind, held)
	}
	if m.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(m.pal.Warning).Render(m.status))
	}
	b.WriteString("\n" + m.hintStyle().Render("[1-9] buy  [u] use consumable  [esc] back"))
	return m.boxStyle().Width(64).Render(b.String())
}

func (m model) renderJournal() string {
	title := m.titleStyle().Render("JOURNAL")
	hints := m.hintStyle().Render("[up/down] scroll  [esc] back")
	return title + "\n" + m.journal.View() + "\n" + hints
}

func (m model) renderEnding() string {
	if m.run == nil || m.run.Ending == nil {
		return "no ending"
	}
	out := m.renderMarkdown(text.EndingCard(m.run.Ending, m.run))
	return out + "\n" + m.hintStyle().Render("[n] new run  [q] quit")
}

func (m model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.titleStyle().Render("HOW THE SEASON WORKS") + "\n\n")
	b.WriteString("Each day cycles day, night, morning. Events offer numbered choices;\n")
	b.WriteString("some test a stat against a difficulty with a d20 behind the counter.\n")
	b.WriteString("Rent falls due every dawn and creeps up weekly. The anomaly index\n")
	b.WriteString("tracks how strange the coast is getting; the four ledgers (tourist,\n")
	b.WriteString("tax, occult, network) remember what you lean into. After day 30 a\n")
	b.WriteString("morning will close the season one way or another.\n\n")
	b.WriteString(m.hintStyle().Render("[esc] back"))
	return m.boxStyle().Width(72).Render(b.String())
}
