// Package navforge generates random, internally consistent browser
// navigator identities: the full set of strings a browser exposes through
// its User-Agent header and in-page navigator object, sampled from curated
// historical version tables.
//
// The public surface is three operations — UserAgent, Navigator and
// NavigatorJS — each restrictable by os, navigator (browser engine) and
// device type filters. A filter accepts one or more enum ids ("win",
// "chrome", "tablet", ...) or the literal "all". Unknown values and filter
// combinations that admit no valid identity fail with *InvalidOptionError.
package navforge

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/navforge/api/schemas"
	"github.com/xkilldash9x/navforge/internal/assemble"
	"github.com/xkilldash9x/navforge/internal/catalog"
	"github.com/xkilldash9x/navforge/internal/constraint"
)

// InvalidOptionError is the only user-facing error type: an unrecognized
// filter value or a self-conflicting filter combination.
type InvalidOptionError = constraint.InvalidOptionError

// All expands a filter to every member of its axis.
const All = constraint.All

// Generator produces navigator identities from its own random source, so
// seeded instances are reproducible and isolated from each other. A
// Generator is safe for concurrent use; the internal mutex serializes draws
// from the shared rand source.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *zap.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand injects the random source used for all sampling.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rng = rng }
}

// WithSeed seeds a fresh random source, for reproducible output.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger used for deprecation notices and debug traces.
// The default is a nop logger.
func WithLogger(logger *zap.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = logger }
}

// New creates a Generator. Without options it is seeded from the clock and
// logs nothing.
func New(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// request collects the per-call filters.
type request struct {
	deviceType constraint.Filter
	os         constraint.Filter
	navigator  constraint.Filter

	platformAlias bool
}

// Option restricts a single generation call.
type Option func(*request)

// WithOS limits the OS families an identity may use ("win", "mac", "linux",
// "android" or "all").
func WithOS(values ...string) Option {
	return func(r *request) { r.os = constraint.Exactly(values...) }
}

// WithNavigator limits the browser engines ("chrome", "firefox", "ie" or
// "all").
func WithNavigator(values ...string) Option {
	return func(r *request) { r.navigator = constraint.Exactly(values...) }
}

// WithDeviceType limits the device classes ("desktop", "smartphone",
// "tablet" or "all"). Without it, generation defaults to desktop unless an
// OS filter widens the field.
func WithDeviceType(values ...string) Option {
	return func(r *request) { r.deviceType = constraint.Exactly(values...) }
}

// WithPlatform is a deprecated alias for WithOS kept for callers of the
// historical API. Using it emits a warning through the generator's logger.
//
// Deprecated: use WithOS.
func WithPlatform(values ...string) Option {
	return func(r *request) {
		r.os = constraint.Exactly(values...)
		r.platformAlias = true
	}
}

// Navigator generates one full navigator identity.
func (g *Generator) Navigator(opts ...Option) (*schemas.NavigatorConfig, error) {
	var req request
	for _, opt := range opts {
		opt(&req)
	}
	if req.platformAlias {
		g.logger.WithOptions(zap.AddCallerSkip(1)).
			Warn("the platform option is deprecated, use the os option instead")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	deviceType, osID, navigatorID, err := constraint.Pick(g.rng, req.deviceType, req.os, req.navigator)
	if err != nil {
		return nil, err
	}

	system := assemble.SystemComponents(g.rng, deviceType, osID, navigatorID)
	app := assemble.AppComponents(g.rng, osID, navigatorID)
	userAgent := assemble.UserAgent(deviceType, navigatorID, system, app)
	appVersion := assemble.AppVersion(osID, navigatorID, system.PlatformVersion, userAgent)

	g.logger.Debug("generated navigator",
		zap.String("device_type", string(deviceType)),
		zap.String("os", string(osID)),
		zap.String("navigator", string(navigatorID)),
		zap.String("user_agent", userAgent),
	)

	return &schemas.NavigatorConfig{
		OSID:         string(osID),
		NavigatorID:  string(navigatorID),
		Platform:     system.Platform,
		OSCPU:        system.OSCPU,
		BuildVersion: app.BuildVersion,
		BuildID:      app.BuildID,
		AppVersion:   appVersion,
		AppName:      app.Name,
		AppCodeName:  "Mozilla",
		Product:      "Gecko",
		ProductSub:   app.ProductSub,
		Vendor:       app.Vendor,
		VendorSub:    "",
		UserAgent:    userAgent,
	}, nil
}

// UserAgent generates only the rendered User-Agent header.
func (g *Generator) UserAgent(opts ...Option) (string, error) {
	config, err := g.Navigator(opts...)
	if err != nil {
		return "", err
	}
	return config.UserAgent, nil
}

// NavigatorJS generates an identity keyed like the in-page window.navigator
// object.
func (g *Generator) NavigatorJS(opts ...Option) (*schemas.JSNavigator, error) {
	config, err := g.Navigator(opts...)
	if err != nil {
		return nil, err
	}
	return config.JS(), nil
}

// DeviceTypes returns the known device-type ids.
func DeviceTypes() []string {
	out := make([]string, len(catalog.DeviceTypes))
	for i, v := range catalog.DeviceTypes {
		out[i] = string(v)
	}
	return out
}

// OSes returns the known OS-family ids.
func OSes() []string {
	out := make([]string, len(catalog.OSes))
	for i, v := range catalog.OSes {
		out[i] = string(v)
	}
	return out
}

// Navigators returns the known browser-engine ids.
func Navigators() []string {
	out := make([]string, len(catalog.Browsers))
	for i, v := range catalog.Browsers {
		out[i] = string(v)
	}
	return out
}

var (
	defaultGen     *Generator
	defaultGenOnce sync.Once
)

func defaultGenerator() *Generator {
	defaultGenOnce.Do(func() {
		defaultGen = New()
	})
	return defaultGen
}

// UserAgent generates a User-Agent header using a shared process-wide
// generator seeded from the clock.
func UserAgent(opts ...Option) (string, error) {
	return defaultGenerator().UserAgent(opts...)
}

// Navigator generates a navigator identity using the shared generator.
func Navigator(opts ...Option) (*schemas.NavigatorConfig, error) {
	return defaultGenerator().Navigator(opts...)
}

// NavigatorJS generates a navigator-object view using the shared generator.
func NavigatorJS(opts ...Option) (*schemas.JSNavigator, error) {
	return defaultGenerator().NavigatorJS(opts...)
}
