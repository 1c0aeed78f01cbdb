package scene

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/consulting-chaos/internal/config"
	"github.com/vovakirdan/consulting-chaos/internal/highscore"
	"github.com/vovakirdan/consulting-chaos/internal/score"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
)

// RunContext is passed into every scene operation. It holds everything that
// outlives a single scene: the run's results, the random source, the
// high-score book and the ambient services.
type RunContext struct {
	RunID    uuid.UUID
	Rand     *rand.Rand
	Run      score.Run
	Scores   *highscore.Book
	Notices  *Notices
	Config   config.Config
	Now      func() time.Time
	Logger   *log.Logger
	Sound    sfx.Player
	Practice bool // run started past the first stage; not eligible for high scores
}

// NewRunContext builds a context. A zero seed seeds from the current time and
// a nil book keeps scores in memory only.
func NewRunContext(cfg config.Config, scores *highscore.Book, seed int64) *RunContext {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := log.New(io.Discard)
	if scores == nil {
		scores = highscore.Open(nil, logger)
	}
	return &RunContext{
		RunID:   uuid.New(),
		Rand:    rand.New(rand.NewSource(seed)),
		Scores:  scores,
		Notices: NewNotices(cfg.Notices.TTL, cfg.Notices.MaxShow),
		Config:  cfg,
		Now:     time.Now,
		Logger:  logger,
		Sound:   sfx.Nop{},
	}
}

// ResetRun clears the results and starts a new run id.
func (c *RunContext) ResetRun() {
	c.Run.Reset()
	c.Practice = false
	c.RunID = uuid.New()
	c.Logger.Debug("run reset", "run", c.RunID)
}

// Notify shows a transient notice.
func (c *RunContext) Notify(text string) {
	c.Notices.Add(text)
}

// Cue plays a sound cue.
func (c *RunContext) Cue(cue sfx.Cue) {
	if c.Sound != nil {
		c.Sound.Play(cue)
	}
}

// record appends a stage result to the run.
func (c *RunContext) record(res score.Result) {
	c.Run.Append(res)
	c.Logger.Info("stage finished",
		"run", c.RunID,
		"stage", res.Name(),
		"elapsed", res.Elapsed(),
		"penalty", res.Penalty(),
		"total", res.Total(),
	)
}
