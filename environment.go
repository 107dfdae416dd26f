package stext

import (
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Orientation describes the direction of the GUI component (widget, pane,
// terminal cell, …) in which the full text will be displayed. The engine
// consults it to decide whether the full text has to be framed with
// directional formatting characters in addition to the inserted marks.
type Orientation int8

// Possible orientations of the surrounding GUI component.
const (
	OrientLTR           Orientation = iota // component is left-to-right
	OrientRTL                              // component is right-to-left
	OrientContextualLTR                    // orientation depends on first strong character, defaulting to LTR
	OrientContextualRTL                    // orientation depends on first strong character, defaulting to RTL
	OrientUnknown                          // orientation is not known
	OrientIgnore                           // orientation should not be taken into account
)

// IsContextual returns true for the two contextual orientations, where the
// displaying component infers its direction from the first strong character
// of the text.
func (o Orientation) IsContextual() bool {
	return o == OrientContextualLTR || o == OrientContextualRTL
}

// Environment describes the surroundings in which structured text is
// processed: the locale of the user, whether the GUI is mirrored, and the
// orientation of the displaying component.
//
// Environments are immutable value bags. Wherever an *Environment is
// accepted, nil is a legal argument and is synonymous with
// DefaultEnvironment().
type Environment struct {
	Locale      language.Tag // user locale; the zero Tag means "und"
	Mirrored    bool         // is the GUI mirrored (Arabic/Hebrew desktop)?
	Orientation Orientation  // orientation of the displaying component
}

var defaultEnvOnce sync.Once
var defaultEnv *Environment

// DefaultEnvironment returns the environment matching the operating system
// settings of the current user: the locale is detected from the OS (falling
// back to "en-US" if detection fails), the GUI is assumed non-mirrored and
// left-to-right oriented.
//
// The detection runs once; all calls return the same instance.
func DefaultEnvironment() *Environment {
	defaultEnvOnce.Do(func() {
		userLocale, err := jj.DetectIETF()
		if err != nil {
			userLocale = "en-US"
			tracer().Infof("stext sets default user locale %v", userLocale)
		} else {
			tracer().Infof("stext detected user locale %v", userLocale)
		}
		defaultEnv = &Environment{
			Locale:      language.Make(userLocale),
			Mirrored:    false,
			Orientation: OrientLTR,
		}
	})
	return defaultEnv
}

// orDefault resolves a possibly-nil environment reference.
func (env *Environment) orDefault() *Environment {
	if env == nil {
		return DefaultEnvironment()
	}
	return env
}

var bidiMatch = language.NewMatcher([]language.Tag{
	language.Arabic, // first language is used as fallback
	language.Hebrew,
	language.Persian,
	language.Urdu,
})

// ProcessingNeeded returns true if structured text processing is worthwhile
// under this environment, i.e. if the user locale is one where right-to-left
// scripts occur. For all other locales lean-to-full conversion degenerates
// to the identity and the engine takes a fast path.
func (env *Environment) ProcessingNeeded() bool {
	e := env.orDefault()
	_, _, confidence := bidiMatch.Match(e.Locale)
	return confidence != language.No
}
