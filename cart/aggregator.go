package cart

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"pizzaria-storefront/models"
)

// Pricer resolves unit prices and delivery fees
type Pricer interface {
	HalfPricer
	UnitPrice(candidate models.CartCandidate, variation *models.Variation) decimal.Decimal
	DeliveryFee(option models.DeliveryOption) decimal.Decimal
}

// Notifier receives user-facing messages. Fire-and-forget.
type Notifier interface {
	Notify(severity models.Severity, message string)
}

// Discriminators identify an existing line without holding its key
type Discriminators struct {
	ProductID      string
	VariationName  string
	AdditionalsKey string
	CuttingStyle   models.CuttingStyle
}

// Key returns the composite identity key for the discriminators
func (d Discriminators) Key() string {
	return KeyFromDiscriminators(d.ProductID, d.VariationName, d.AdditionalsKey, d.CuttingStyle)
}

// Snapshot is a read-only view of the cart
type Snapshot struct {
	Lines     []models.CartLine `json:"lines"`
	IsOpen    bool              `json:"isOpen"`
	ItemCount int               `json:"itemCount"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
}

// Aggregator owns the cart lines of one session and merges identical selections
// into a single line. It is not safe for concurrent use; callers serialise access.
type Aggregator struct {
	pricer   Pricer
	notifier Notifier

	lines  []models.CartLine
	isOpen bool

	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// NewAggregator creates an empty cart
func NewAggregator(pricer Pricer, notifier Notifier) *Aggregator {
	return &Aggregator{
		pricer:      pricer,
		notifier:    notifier,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Add puts a selection in the cart. A line with the same identity gets its
// quantity bumped; otherwise a new line with quantity 1 is appended.
func (a *Aggregator) Add(candidate models.CartCandidate, selectedVariation *models.Variation) models.CartLine {
	line := newLine(candidate, selectedVariation)
	line.Key = ComputeIdentityKey(line)

	if i := a.indexOf(line.Key); i >= 0 {
		next := a.copyLines()
		next[i].Quantity++
		a.lines = next
		log.Printf("🛒 Cart: Merged into line %s, quantity=%d", line.Key, next[i].Quantity)
		a.notify(models.SeveritySuccess, fmt.Sprintf("Mais um %s adicionado ao carrinho", line.Name))
		a.publish()
		return next[i]
	}

	line.Price = a.pricer.UnitPrice(candidate, selectedVariation)
	line.Quantity = 1
	a.lines = append(a.copyLines(), line)
	log.Printf("🛒 Cart: Added line %s, unit price=%s", line.Key, line.Price.StringFixed(2))
	a.notify(models.SeveritySuccess, fmt.Sprintf("%s adicionado ao carrinho", line.Name))
	a.publish()
	return line
}

// Increment adds one unit to the matching line. No-op when nothing matches.
func (a *Aggregator) Increment(d Discriminators) {
	i := a.indexOf(d.Key())
	if i < 0 {
		return
	}
	next := a.copyLines()
	next[i].Quantity++
	a.lines = next
	a.publish()
}

// Decrement removes one unit from the matching line, never going below 1.
// Removing a line is a separate, explicit operation.
func (a *Aggregator) Decrement(d Discriminators) {
	i := a.indexOf(d.Key())
	if i < 0 || a.lines[i].Quantity <= 1 {
		return
	}
	next := a.copyLines()
	next[i].Quantity--
	a.lines = next
	a.publish()
}

// Remove deletes the matching line whatever its quantity
func (a *Aggregator) Remove(d Discriminators) {
	key := d.Key()
	i := a.indexOf(key)
	if i < 0 {
		return
	}
	removed := a.lines[i]
	next := make([]models.CartLine, 0, len(a.lines)-1)
	next = append(next, a.lines[:i]...)
	next = append(next, a.lines[i+1:]...)
	a.lines = next
	log.Printf("🛒 Cart: Removed line %s", key)
	a.notify(models.SeverityInfo, fmt.Sprintf("%s removido do carrinho", removed.Name))
	a.publish()
}

// Clear empties the cart
func (a *Aggregator) Clear() {
	a.lines = nil
	log.Printf("🛒 Cart: Cleared")
	a.notify(models.SeverityInfo, "Carrinho esvaziado")
	a.publish()
}

// Toggle flips the cart panel visibility
func (a *Aggregator) Toggle() {
	a.isOpen = !a.isOpen
	a.publish()
}

// SetOpen sets the cart panel visibility
func (a *Aggregator) SetOpen(open bool) {
	if a.isOpen == open {
		return
	}
	a.isOpen = open
	a.publish()
}

// Lines returns a copy of the cart lines in insertion order
func (a *Aggregator) Lines() []models.CartLine {
	return a.copyLines()
}

// IsEmpty reports whether the cart has no lines
func (a *Aggregator) IsEmpty() bool {
	return len(a.lines) == 0
}

// IsOpen reports whether the cart panel is visible
func (a *Aggregator) IsOpen() bool {
	return a.isOpen
}

// Subtotal is the sum of price × quantity over all lines
func (a *Aggregator) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range a.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}

// ItemCount is the total number of units in the cart
func (a *Aggregator) ItemCount() int {
	count := 0
	for _, line := range a.lines {
		count += line.Quantity
	}
	return count
}

// DeliveryFee returns the fee for the given delivery option
func (a *Aggregator) DeliveryFee(option models.DeliveryOption) decimal.Decimal {
	return a.pricer.DeliveryFee(option)
}

// Total is the subtotal plus the delivery fee for the given option
func (a *Aggregator) Total(option models.DeliveryOption) decimal.Decimal {
	return a.Subtotal().Add(a.DeliveryFee(option))
}

// Snapshot returns the current state of the cart
func (a *Aggregator) Snapshot() Snapshot {
	return Snapshot{
		Lines:     a.copyLines(),
		IsOpen:    a.isOpen,
		ItemCount: a.ItemCount(),
		Subtotal:  a.Subtotal(),
	}
}

// Subscribe registers fn to receive a snapshot after every change.
// The returned function cancels the subscription.
func (a *Aggregator) Subscribe(fn func(Snapshot)) func() {
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = fn
	return func() {
		delete(a.subscribers, id)
	}
}

func (a *Aggregator) publish() {
	if len(a.subscribers) == 0 {
		return
	}
	snapshot := a.Snapshot()
	for _, fn := range a.subscribers {
		fn(snapshot)
	}
}

func (a *Aggregator) notify(severity models.Severity, message string) {
	if a.notifier != nil {
		a.notifier.Notify(severity, message)
	}
}

func (a *Aggregator) indexOf(key string) int {
	for i, line := range a.lines {
		if line.Key == key {
			return i
		}
	}
	return -1
}

func (a *Aggregator) copyLines() []models.CartLine {
	lines := make([]models.CartLine, len(a.lines))
	copy(lines, a.lines)
	return lines
}

func newLine(candidate models.CartCandidate, variation *models.Variation) models.CartLine {
	line := models.CartLine{
		ProductID:     candidate.ID,
		Name:          candidate.Name,
		Description:   candidate.Description,
		Category:      candidate.Category,
		ImageURL:      candidate.ImageURL,
		IsHalfAndHalf: candidate.IsHalfAndHalf,
		CuttingStyle:  candidate.CuttingStyle,
	}
	if variation != nil {
		v := *variation
		line.SelectedVariation = &v
	}
	if candidate.Half1 != nil {
		h := *candidate.Half1
		line.Half1 = &h
	}
	if candidate.Half2 != nil {
		h := *candidate.Half2
		line.Half2 = &h
	}
	if len(candidate.SelectedAdditionals) > 0 {
		line.SelectedAdditionals = append([]models.Additional(nil), candidate.SelectedAdditionals...)
	}
	return line
}
