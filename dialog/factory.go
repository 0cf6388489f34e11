package dialog

import (
	"fmt"
	"log/slog"

	"github.com/billie-coop/confirm/dialog/content"
	"github.com/billie-coop/confirm/dialog/sizing"
	"github.com/billie-coop/confirm/internal/logging"
	"github.com/google/uuid"
)

// System wide defaults.
const (
	DefaultCaption       = "Confirm"
	DefaultMessage       = "Are You sure?"
	DefaultOkCaption     = "Ok"
	DefaultCancelCaption = "Cancel"
)

// Request is everything a caller says about a dialog. Empty strings mean
// "not given"; a non-empty NotOkLabel makes the dialog three-way.
type Request struct {
	Title       string
	Message     string
	ContentMode content.Mode
	OkLabel     string
	CancelLabel string
	NotOkLabel  string
}

// ThreeWay reports whether the request asks for a not-ok button.
func (r Request) ThreeWay() bool {
	return r.NotOkLabel != ""
}

// Factory builds dialogs from requests.
type Factory interface {
	Create(req Request) *Dialog
}

// FactoryOption configures a DefaultFactory.
type FactoryOption func(*DefaultFactory)

// WithButtonOrder replaces the button order policy.
func WithButtonOrder(order ButtonOrder) FactoryOption {
	return func(f *DefaultFactory) {
		f.Order = order
	}
}

// WithLogger sets the logger handed to every created dialog.
func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *DefaultFactory) {
		f.Logger = logger
	}
}

// DefaultFactory creates text dialogs and sizes them from their message.
// The Build hooks and Order may be replaced to customize buttons.
type DefaultFactory struct {
	Sizing sizing.Config
	Order  ButtonOrder
	Logger *slog.Logger

	BuildOk     func(caption string) *Button
	BuildCancel func(caption string) *Button
	BuildNotOk  func(caption string) *Button
}

// NewDefaultFactory validates cfg and returns a factory using it.
func NewDefaultFactory(cfg sizing.Config, opts ...FactoryOption) (*DefaultFactory, error) {
	cfg, err := sizing.NewConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialog factory: %w", err)
	}

	f := &DefaultFactory{
		Sizing:      cfg,
		Order:       DefaultButtonOrder,
		Logger:      logging.Discard(),
		BuildOk:     BuildOkButton,
		BuildCancel: BuildCancelButton,
		BuildNotOk:  BuildNotOkButton,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Create builds a dialog for req. Unset fields of a zero DefaultFactory fall
// back to the package defaults.
func (f *DefaultFactory) Create(req Request) *Dialog {
	threeWay := req.ThreeWay()

	logger := f.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cfg := f.Sizing
	if cfg == (sizing.Config{}) {
		cfg = sizing.DefaultConfig()
	}

	d := &Dialog{
		Controller: NewController(threeWay, logger),
		id:         uuid.NewString(),
		caption:    withDefault(req.Title, DefaultCaption),
		message:    req.Message,
		mode:       req.ContentMode,
	}

	d.cancelButton = build(f.BuildCancel, BuildCancelButton, withDefault(req.CancelLabel, DefaultCancelCaption))
	if threeWay {
		d.notOkButton = build(f.BuildNotOk, BuildNotOkButton, req.NotOkLabel)
	}
	d.okButton = build(f.BuildOk, BuildOkButton, withDefault(req.OkLabel, DefaultOkCaption))

	order := f.Order
	if order == nil {
		order = DefaultButtonOrder
	}
	d.buttons = compact(order(d.cancelButton, d.notOkButton, d.okButton)...)

	d.size = sizing.Estimate(req.Message, req.Title, req.ContentMode, cfg)

	logger.Debug("dialog created",
		"id", d.id,
		"three_way", threeWay,
		"mode", req.ContentMode,
		"size", d.size.String(),
	)
	return d
}

// BuildOkButton builds the primary ok button.
func BuildOkButton(caption string) *Button {
	return &Button{ID: OkID, Caption: caption, Primary: true}
}

// BuildCancelButton builds the cancel button.
func BuildCancelButton(caption string) *Button {
	return &Button{ID: CancelID, Caption: caption}
}

// BuildNotOkButton builds the not-ok button of three-way dialogs.
func BuildNotOkButton(caption string) *Button {
	return &Button{ID: NotOkID, Caption: caption}
}

func build(hook, fallback func(string) *Button, caption string) *Button {
	if hook == nil {
		return fallback(caption)
	}
	return hook(caption)
}

func withDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
