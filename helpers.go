package lives

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"golang.org/x/text/language"
)

// sourcePlayer returns the player behind a command source, or false for
// sources such as the console.
func sourcePlayer(src cmd.Source) (Player, bool) {
	p, ok := src.(Player)
	return p, ok
}

// sourceLocale returns the locale command output should be translated to.
func sourceLocale(src cmd.Source) language.Tag {
	if p, ok := sourcePlayer(src); ok {
		return p.Locale()
	}
	return language.English
}
