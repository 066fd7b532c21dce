package paginator

import (
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/log"
)

// TimeoutBehavior selects what happens to the rendered controls once the
// session times out.
type TimeoutBehavior int

const (
	// TimeoutDisable re-renders every control disabled.
	TimeoutDisable TimeoutBehavior = iota
	// TimeoutRemove strips all controls from the message.
	TimeoutRemove
	// TimeoutNone leaves the message untouched.
	TimeoutNone
)

func DefaultConfig() *Config {
	return &Config{
		Logger:          log.Default(),
		Timeout:         time.Minute,
		UseButtons:      true,
		UseSelect:       true,
		ExtendedButtons: true,
		Placeholder:     "Page",
		OnTimeout:       TimeoutDisable,
		ButtonsConfig:   defaultButtonsConfig(),
	}
}

func defaultButtonsConfig() ButtonsConfig {
	return ButtonsConfig{
		First: &ComponentOptions{
			Emoji: discord.ComponentEmoji{Name: "⏮️"},
			Style: discord.ButtonStylePrimary,
		},
		Prev: &ComponentOptions{
			Emoji: discord.ComponentEmoji{Name: "◀️"},
			Style: discord.ButtonStylePrimary,
		},
		Index: &ComponentOptions{
			Style: discord.ButtonStylePrimary,
		},
		Next: &ComponentOptions{
			Emoji: discord.ComponentEmoji{Name: "▶️"},
			Style: discord.ButtonStylePrimary,
		},
		Last: &ComponentOptions{
			Emoji: discord.ComponentEmoji{Name: "⏭️"},
			Style: discord.ButtonStylePrimary,
		},
	}
}

type Config struct {
	Logger log.Logger
	// Timeout bounds each wait for the next interaction. Zero or negative
	// means the session never times out.
	Timeout time.Duration
	// AuthorOnly restricts interactions to the original invoking user.
	AuthorOnly bool
	UseButtons bool
	UseSelect  bool
	// UseIndexLabel adds the non-interactive "Page x/y" pseudo-button between
	// prev and next.
	UseIndexLabel bool
	// ExtendedButtons adds the first/last jump buttons around prev/next.
	ExtendedButtons bool
	ButtonsConfig   ButtonsConfig
	// CustomButtons are appended after the navigation buttons. They are
	// dropped entirely when the row would exceed the host platform's capacity.
	CustomButtons []discord.ButtonComponent
	// CustomCallback handles events that no navigation control and no page
	// callback consumed.
	CustomCallback Callback
	Placeholder    string
	OnTimeout      TimeoutBehavior
	BeforeRender   Hook
	AfterRender    Hook
}

// ButtonsConfig restyles the navigation buttons per role. A nil entry keeps
// the default. Custom IDs and disabled states are always owned by the
// renderer, overrides only affect emoji, label and style.
type ButtonsConfig struct {
	First *ComponentOptions
	Prev  *ComponentOptions
	Index *ComponentOptions
	Next  *ComponentOptions
	Last  *ComponentOptions
}

func (c ButtonsConfig) options(role Role) *ComponentOptions {
	switch role {
	case RoleFirst:
		return c.First
	case RolePrev:
		return c.Prev
	case RoleIndex:
		return c.Index
	case RoleNext:
		return c.Next
	case RoleLast:
		return c.Last
	}
	return nil
}

type ComponentOptions struct {
	Emoji discord.ComponentEmoji
	Label string
	Style discord.ButtonStyle
}

type ConfigOpt func(config *Config)

func (c *Config) Apply(opts []ConfigOpt) {
	for _, opt := range opts {
		opt(c)
	}
}

func WithLogger(logger log.Logger) ConfigOpt {
	return func(config *Config) {
		config.Logger = logger
	}
}

func WithTimeout(timeout time.Duration) ConfigOpt {
	return func(config *Config) {
		config.Timeout = timeout
	}
}

func WithAuthorOnly(authorOnly bool) ConfigOpt {
	return func(config *Config) {
		config.AuthorOnly = authorOnly
	}
}

func WithButtons(useButtons bool) ConfigOpt {
	return func(config *Config) {
		config.UseButtons = useButtons
	}
}

func WithSelect(useSelect bool) ConfigOpt {
	return func(config *Config) {
		config.UseSelect = useSelect
	}
}

func WithIndexLabel(useIndexLabel bool) ConfigOpt {
	return func(config *Config) {
		config.UseIndexLabel = useIndexLabel
	}
}

func WithExtendedButtons(extendedButtons bool) ConfigOpt {
	return func(config *Config) {
		config.ExtendedButtons = extendedButtons
	}
}

func WithButtonsConfig(buttonsConfig ButtonsConfig) ConfigOpt {
	return func(config *Config) {
		config.ButtonsConfig = buttonsConfig
	}
}

func WithCustomButtons(buttons ...discord.ButtonComponent) ConfigOpt {
	return func(config *Config) {
		config.CustomButtons = buttons
	}
}

func WithCustomCallback(callback Callback) ConfigOpt {
	return func(config *Config) {
		config.CustomCallback = callback
	}
}

func WithPlaceholder(placeholder string) ConfigOpt {
	return func(config *Config) {
		config.Placeholder = placeholder
	}
}

func WithTimeoutBehavior(behavior TimeoutBehavior) ConfigOpt {
	return func(config *Config) {
		config.OnTimeout = behavior
	}
}

func WithBeforeRender(hook Hook) ConfigOpt {
	return func(config *Config) {
		config.BeforeRender = hook
	}
}

func WithAfterRender(hook Hook) ConfigOpt {
	return func(config *Config) {
		config.AfterRender = hook
	}
}
