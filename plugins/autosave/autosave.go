package autosave

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/plugin"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	// Default configuration values
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave plugin periodically saves the document when it has unsaved
// changes and a file path.
type AutoSave struct {
	api plugin.EditorAPI

	// Set only in Initialize, before the loop starts; the loop gets the
	// interval by value.
	enabled  bool
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() *AutoSave {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// parseInterval accepts a duration string ("30s") or a number of seconds.
func parseInterval(v interface{}) (time.Duration, error) {
	var d time.Duration
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return 0, err
		}
		d = parsed
	case int64:
		d = time.Duration(val) * time.Second
	case int:
		d = time.Duration(val) * time.Second
	case float64:
		d = time.Duration(val * float64(time.Second))
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %v", d)
	}
	return d, nil
}

// Initialize reads configuration and starts the auto-save loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	name := p.Name()

	if v, ok := api.GetPluginConfigValue(name, "enabled"); ok {
		if b, isBool := v.(bool); isBool {
			p.enabled = b
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", name, v, p.enabled)
		}
	}
	if v, ok := api.GetPluginConfigValue(name, "interval"); ok {
		if d, err := parseInterval(v); err != nil {
			logger.Warnf("%s: Invalid 'interval' config (%v): %v. Using default (%v)", name, v, err, p.interval)
		} else {
			p.interval = d
		}
	}

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", name, p.enabled, p.interval)

	if p.enabled {
		p.stopChan = make(chan struct{})
		p.wg.Add(1)
		go p.saverLoop(p.interval)
	}
	return nil
}

// Enabled reports whether the saver loop runs.
func (p *AutoSave) Enabled() bool {
	return p.enabled
}

// Interval returns the configured save interval.
func (p *AutoSave) Interval() time.Duration {
	return p.interval
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	if p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	}
	return nil
}

// saverLoop hands each tick to the event loop; the document is never
// touched from this goroutine.
func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.api.Post(p.saveIfModified); err != nil {
				logger.Debugf("%s: post failed: %v", p.Name(), err)
			}
		case <-p.stopChan:
			return
		}
	}
}

// saveIfModified saves the document if it is dirty and has a path.
func (p *AutoSave) saveIfModified() {
	if p.api == nil || !p.api.IsBufferModified() {
		return
	}
	filePath := p.api.GetBufferFilePath()
	if filePath == "" {
		logger.Debugf("%s: Buffer is modified but has no name, skipping auto-save.", p.Name())
		return
	}
	if err := p.api.SaveBuffer(); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), filePath, err)
		p.api.SetStatusMessage("Auto-save failed: %v", err)
		return
	}
	logger.Debugf("%s: Auto-saved '%s'", p.Name(), filePath)
	p.api.SetStatusMessage("Auto-saved")
}
