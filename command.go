package lives

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/world"
)

// NewCommand returns the /lives command:
//
//	/lives                       shows the caller's lives
//	/lives <target>              shows the lives of target
//	/lives set <target> <value>  sets the lives of target
//
// Only sources allowed by ops may run it.
func NewCommand(d *Dispatcher, ops *Operators) cmd.Command {
	return cmd.New("lives", "Shows or sets the lives of a player.", nil,
		livesSelf{d: d, ops: ops},
		livesShow{d: d, ops: ops},
		livesSet{d: d, ops: ops},
	)
}

// livesSelf shows the lives of the player running the command.
type livesSelf struct {
	d   *Dispatcher
	ops *Operators
}

// livesShow shows the lives of the targeted players.
type livesShow struct {
	d   *Dispatcher
	ops *Operators

	Target []cmd.Target `cmd:"target"`
}

// livesSet sets the lives of the targeted players.
type livesSet struct {
	d   *Dispatcher
	ops *Operators

	Set    cmd.SubCommand `cmd:"set"`
	Target []cmd.Target   `cmd:"target"`
	Value  int            `cmd:"value"`
}

func (c livesSelf) Allow(src cmd.Source) bool { return c.ops.Allow(src) }
func (c livesShow) Allow(src cmd.Source) bool { return c.ops.Allow(src) }
func (c livesSet) Allow(src cmd.Source) bool  { return c.ops.Allow(src) }

// Run implements cmd.Runnable.
func (c livesSelf) Run(src cmd.Source, o *cmd.Output, tx *world.Tx) {
	p, ok := sourcePlayer(src)
	if !ok {
		o.Error(translate(sourceLocale(src), keyCommandTargetRequired))
		return
	}
	o.Print(describeLives(c.d, src, p))
}

// Run implements cmd.Runnable.
func (c livesShow) Run(src cmd.Source, o *cmd.Output, tx *world.Tx) {
	for _, t := range c.Target {
		p, ok := t.(Player)
		if !ok {
			o.Error(translate(sourceLocale(src), keyCommandNotPlayer, targetName(t)))
			continue
		}
		o.Print(describeLives(c.d, src, p))
	}
}

// Run implements cmd.Runnable.
func (c livesSet) Run(src cmd.Source, o *cmd.Output, tx *world.Tx) {
	locale := sourceLocale(src)
	if c.Value < MinLives || c.Value > MaxLives {
		o.Error(translate(locale, keyCommandOutOfRange, MinLives, MaxLives))
		return
	}
	for _, t := range c.Target {
		p, ok := t.(Player)
		if !ok {
			o.Error(translate(locale, keyCommandNotPlayer, targetName(t)))
			continue
		}
		updated, err := c.d.SetLivesOf(p, c.Value)
		if err != nil {
			o.Error(translate(locale, keyCommandOutOfRange, MinLives, MaxLives))
			return
		}
		o.Print(translate(locale, keyCommandSetSuccess, p.Name(), updated, MaxLives))
		c.d.log.Info("lives: set by command", "player", p.Name(), "lives", updated, "source", sourceName(src))
	}
}

func describeLives(d *Dispatcher, src cmd.Source, p Player) string {
	return translate(sourceLocale(src), keyCommandGetSuccess, p.Name(), d.LivesOf(p), MaxLives)
}

func targetName(t cmd.Target) string {
	if n, ok := t.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "?"
}

func sourceName(src cmd.Source) string {
	if n, ok := src.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "console"
}
