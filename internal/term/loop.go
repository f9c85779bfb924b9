package term

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/park285/cheese-termchess/internal/session"
	"github.com/park285/cheese-termchess/pkg/chessdto"
)

// Presenter receives one frame per redraw.
type Presenter interface {
	Present(frame chessdto.Frame) error
}

// Driver owns the screen and feeds decoded key events to a session, one at a
// time, redrawing after each.
type Driver struct {
	screen    tcell.Screen
	sess      *session.Session
	keymap    *Keymap
	presenter Presenter
	log       *zap.Logger
}

func NewDriver(screen tcell.Screen, sess *session.Session, keymap *Keymap, presenter Presenter, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		screen:    screen,
		sess:      sess,
		keymap:    keymap,
		presenter: presenter,
		log:       logger.With(zap.String("session_id", sess.ID())),
	}
}

// Run draws the first frame and processes events until Esc/Ctrl-C, screen
// shutdown, or ctx cancellation. A non-nil error means the session hit a board
// invariant violation and must not continue.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("session_start")
	if err := d.present(); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			d.log.Info("session_end", zap.String("reason", "screen_closed"))
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				d.log.Info("session_end", zap.String("reason", "canceled"))
				return nil
			}
		case *tcell.EventResize:
			d.screen.Sync()
			if err := d.present(); err != nil {
				return err
			}
		case *tcell.EventKey:
			in, quit := d.keymap.Decode(ev)
			if quit {
				d.log.Info("session_end", zap.String("reason", "quit"))
				return nil
			}
			if _, err := d.sess.Apply(in); err != nil {
				d.log.Error("session_abort", zap.Error(err))
				return err
			}
			if err := d.present(); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) present() error {
	if err := d.presenter.Present(d.sess.Frame()); err != nil {
		d.log.Warn("render_failed", zap.Error(err))
		return err
	}
	return nil
}
