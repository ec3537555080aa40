package policyio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oba-ldap/nacm/internal/logging"
	"github.com/oba-ldap/nacm/internal/nacm"
)

// Manager holds a NACM policy with hot reload support: a fsnotify watch
// on the backing file swaps the policy atomically, the way the teacher's
// acl.Manager polled and swapped ACL configuration.
type Manager struct {
	mu           sync.RWMutex
	policy       *nacm.Policy
	view         *nacm.PolicyView
	filePath     string
	recoveryUser string
	logger       logging.Logger

	watcher *fsnotify.Watcher
	stopCh  chan struct{}

	reloadCount   uint64
	lastReload    time.Time
	lastError     error
	lastErrorTime time.Time
}

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// FilePath is the path to the NACM policy YAML file.
	FilePath string
	// RecoveryUser is the host-configured recovery user (spec.md §9).
	RecoveryUser string
	// Logger receives reload events. May be nil.
	Logger logging.Logger
}

// NewManager loads the policy at cfg.FilePath and starts watching it for
// changes. Call Close to stop watching.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("policyio: file path is required")
	}

	policy, err := LoadFile(cfg.FilePath, cfg.RecoveryUser)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		policy:       policy,
		view:         nacm.NewPolicyView(policy),
		filePath:     cfg.FilePath,
		recoveryUser: cfg.RecoveryUser,
		logger:       cfg.Logger,
		lastReload:   time.Now(),
		stopCh:       make(chan struct{}),
	}

	m.logInfo("nacm policy loaded", "file", cfg.FilePath, "ruleLists", len(policy.RuleLists))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("policyio: create watcher: %w", err)
	}
	if err := watcher.Add(cfg.FilePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("policyio: watch %s: %w", cfg.FilePath, err)
	}
	m.watcher = watcher

	go m.watchLoop()

	return m, nil
}

func (m *Manager) watchLoop() {
	debounce := 100 * time.Millisecond
	var pending *time.Timer

	for {
		select {
		case <-m.stopCh:
			return
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, func() {
				if err := m.Reload(); err != nil {
					m.logError("nacm policy reload failed", "error", err)
				}
			})
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.logError("nacm policy watch error", "error", err)
		}
	}
}

// Reload reloads the policy from disk. On failure the previous policy
// remains in effect.
func (m *Manager) Reload() error {
	policy, err := LoadFile(m.filePath, m.recoveryUser)
	if err != nil {
		m.mu.Lock()
		m.lastError = err
		m.lastErrorTime = time.Now()
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.policy = policy
	m.view = nacm.NewPolicyView(policy)
	m.lastReload = time.Now()
	m.lastError = nil
	m.mu.Unlock()

	atomic.AddUint64(&m.reloadCount, 1)
	m.logInfo("nacm policy reloaded", "file", m.filePath, "ruleLists", len(policy.RuleLists))

	return nil
}

// View returns the current PolicyView. Safe for concurrent use.
func (m *Manager) View() *nacm.PolicyView {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view
}

// Close stops watching the policy file.
func (m *Manager) Close() error {
	close(m.stopCh)
	if m.watcher != nil {
		return m.watcher.Close()
	}
	return nil
}

// Stats reports reload statistics.
type Stats struct {
	FilePath      string
	ReloadCount   uint64
	LastReload    time.Time
	LastError     error
	LastErrorTime time.Time
}

// Stats returns a snapshot of the manager's reload statistics.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		FilePath:      m.filePath,
		ReloadCount:   atomic.LoadUint64(&m.reloadCount),
		LastReload:    m.lastReload,
		LastError:     m.lastError,
		LastErrorTime: m.lastErrorTime,
	}
}

func (m *Manager) logInfo(msg string, kv ...interface{}) {
	if m.logger != nil {
		m.logger.Info(msg, kv...)
	}
}

func (m *Manager) logError(msg string, kv ...interface{}) {
	if m.logger != nil {
		m.logger.Error(msg, kv...)
	}
}
