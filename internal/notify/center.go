package notify

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/glasscast/glasscast/internal/metrics"
	"github.com/glasscast/glasscast/internal/models"
)

// DefaultTTL is how long a notification stays visible unless dismissed.
const DefaultTTL = 5 * time.Second

// Permission models the native-alert gate: default until resolved, then
// sticky for the rest of the session.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Pusher delivers notifications to a native channel outside the dashboard.
type Pusher interface {
	// Probe checks the channel is reachable; used to resolve permission.
	Probe(ctx context.Context) error
	Push(ctx context.Context, n models.Notification) error
}

// HistorySink records enqueued notifications for the alert history page.
type HistorySink interface {
	InsertNotification(n models.Notification) error
}

// Center owns the ordered set of transient notifications. All mutation
// goes through its mutex; consumers only read copies and request removal
// by id.
type Center struct {
	mu            sync.Mutex
	notifications []models.Notification
	timers        map[string]*time.Timer
	perm          Permission
	pusher        Pusher
	history       HistorySink
	defaultTTL    time.Duration
	lastID        int64
}

func NewCenter() *Center {
	return &Center{
		timers:     make(map[string]*time.Timer),
		perm:       PermissionDefault,
		defaultTTL: DefaultTTL,
	}
}

// SetPusher configures the native delivery channel.
func (c *Center) SetPusher(p Pusher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pusher = p
}

// SetHistory configures the persistent notification log.
func (c *Center) SetHistory(h HistorySink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = h
}

// SetDefaultTTL overrides the display duration used when Enqueue gets a
// non-positive ttl.
func (c *Center) SetDefaultTTL(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultTTL = d
}

// Enqueue appends a notification and schedules its auto-expiry. The id is
// time-derived and strictly increasing, so concurrent enqueues never
// collide. Returns immediately; native delivery happens in the background.
func (c *Center) Enqueue(title, message string, sev models.Severity, ttl time.Duration) string {
	c.mu.Lock()
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := time.Now()
	id := now.UnixNano()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id

	n := models.Notification{
		ID:        strconv.FormatInt(id, 10),
		Title:     title,
		Message:   message,
		Severity:  sev,
		CreatedAt: now,
		TTL:       ttl,
	}
	c.notifications = append(c.notifications, n)
	c.timers[n.ID] = time.AfterFunc(ttl, func() { c.Dismiss(n.ID) })

	perm := c.perm
	pusher := c.pusher
	history := c.history
	c.mu.Unlock()

	metrics.NotificationsEnqueued.WithLabelValues(string(sev)).Inc()

	if history != nil {
		if err := history.InsertNotification(n); err != nil {
			log.Printf("notify: record history: %v", err)
		}
	}
	if perm == PermissionGranted && pusher != nil {
		go c.deliver(pusher, n)
	}

	return n.ID
}

// deliver pushes to the native channel. Failures are logged and swallowed;
// a broken channel must never take the notification pipeline with it.
func (c *Center) deliver(pusher Pusher, n models.Notification) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("notify: push panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pusher.Push(ctx, n); err != nil {
		log.Printf("notify: push %s: %v", n.ID, err)
	}
}

// Dismiss removes a notification immediately and cancels its expiry timer.
// No-op when the id is already gone, so a late timer firing after manual
// dismissal cannot double-remove.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, n := range c.notifications {
		if n.ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return
		}
	}
}

// Active returns the current notifications in insertion order.
func (c *Center) Active() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// Permission returns the current native-alert permission state.
func (c *Center) Permission() Permission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.perm
}

// RequestPermission probes the native channel once and latches the result.
// After the first resolution the stored state is returned without
// re-probing, including after denial.
func (c *Center) RequestPermission(ctx context.Context) Permission {
	c.mu.Lock()
	if c.perm != PermissionDefault {
		perm := c.perm
		c.mu.Unlock()
		return perm
	}
	pusher := c.pusher
	c.mu.Unlock()

	resolved := PermissionDenied
	if pusher != nil {
		if err := pusher.Probe(ctx); err != nil {
			log.Printf("notify: permission probe: %v", err)
		} else {
			resolved = PermissionGranted
		}
	}

	c.mu.Lock()
	if c.perm == PermissionDefault {
		c.perm = resolved
	}
	perm := c.perm
	c.mu.Unlock()
	return perm
}
