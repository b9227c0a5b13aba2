package memory

// EventType is the stable string identifier of a board event.
type EventType string

// Board event types.
const (
	EventSelectFirst  EventType = "select_first"
	EventSelectSecond EventType = "select_second"
	EventDeselect     EventType = "deselect"
	EventMatch        EventType = "match"
	EventMismatch     EventType = "mismatch"
	EventPlace        EventType = "place"
	EventSetup        EventType = "setup"
	EventShuffle      EventType = "shuffle"
	EventShuffled     EventType = "shuffled"
)

// EventTypes lists every event type the board broadcasts.
var EventTypes = []EventType{
	EventSelectFirst,
	EventSelectSecond,
	EventDeselect,
	EventMatch,
	EventMismatch,
	EventPlace,
	EventSetup,
	EventShuffle,
	EventShuffled,
}

// Event is an immutable notification broadcast by the board.
// The set of implementations is closed; consumers type-switch on the
// concrete variants below.
type Event interface {
	Type() EventType
	boardEvent()
}

// SelectEvent is sent when a cell is picked as first or second selection.
type SelectEvent struct {
	Kind   EventType // EventSelectFirst or EventSelectSecond
	Column int
	Row    int
	Tile   Tile
}

func (e SelectEvent) Type() EventType { return e.Kind }
func (SelectEvent) boardEvent() {}

// DeselectEvent is sent whenever both selections are cleared.
type DeselectEvent struct{}

func (DeselectEvent) Type() EventType { return EventDeselect }
func (DeselectEvent) boardEvent() {}

// MatchEvent carries the outcome of evaluating a selected pair.
type MatchEvent struct {
	Pair  Pair
	Match bool
}

// Type returns EventMatch or EventMismatch depending on the outcome.
func (e MatchEvent) Type() EventType {
	if e.Match {
		return EventMatch
	}
	return EventMismatch
}
func (MatchEvent) boardEvent() {}

// ChangeEvent is sent once per shuffle iteration with snapshots of the
// tile sequence before and after the permutation.
type ChangeEvent struct {
	Before []Tile
	After  []Tile
}

func (ChangeEvent) Type() EventType { return EventShuffle }
func (ChangeEvent) boardEvent() {}

// PlaceEvent is sent when setup puts a tile on a cell.
type PlaceEvent struct {
	Column   int
	Row      int
	Tile     Tile
	TileType string
}

func (PlaceEvent) Type() EventType { return EventPlace }
func (PlaceEvent) boardEvent() {}

// SetupEvent is sent once setup has placed every tile.
type SetupEvent struct {
	Columns int
	Rows    int
}

func (SetupEvent) Type() EventType { return EventSetup }
func (SetupEvent) boardEvent() {}

// ShuffledEvent is sent after all shuffle iterations completed.
type ShuffledEvent struct {
	Iterations int
}

func (ShuffledEvent) Type() EventType { return EventShuffled }
func (ShuffledEvent) boardEvent() {}
