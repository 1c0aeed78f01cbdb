package scene

// notice is one transient message.
type notice struct {
	text string
	age  float64
}

// Notices is a list of short-lived messages ("toasts"). Each expires after
// its TTL; only the newest few are shown.
type Notices struct {
	ttl     float64
	maxShow int
	items   []notice
}

// NewNotices creates an empty list.
func NewNotices(ttl float64, maxShow int) *Notices {
	if ttl <= 0 {
		ttl = 1.5
	}
	if maxShow <= 0 {
		maxShow = 3
	}
	return &Notices{ttl: ttl, maxShow: maxShow}
}

// Add appends a notice.
func (n *Notices) Add(text string) {
	n.items = append(n.items, notice{text: text})
}

// Update ages every notice by dt and drops expired ones.
func (n *Notices) Update(dt float64) {
	kept := n.items[:0]
	for _, it := range n.items {
		it.age += dt
		if it.age < n.ttl {
			kept = append(kept, it)
		}
	}
	n.items = kept
}

// Visible returns the newest notices, oldest first.
func (n *Notices) Visible() []string {
	start := max(0, len(n.items)-n.maxShow)
	out := make([]string, 0, len(n.items)-start)
	for _, it := range n.items[start:] {
		out = append(out, it.text)
	}
	return out
}

// Len returns the number of live notices.
func (n *Notices) Len() int { return len(n.items) }

// Clear drops every notice.
func (n *Notices) Clear() { n.items = nil }
