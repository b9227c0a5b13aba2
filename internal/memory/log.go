package memory

import "github.com/charmbracelet/log"

// LogListener returns a listener that writes every event to logger.
// Register it with Broadcaster.OnAll.
func LogListener(logger *log.Logger) Listener {
	return func(e Event) {
		switch ev := e.(type) {
		case SelectEvent:
			logger.Debug(string(ev.Kind), "column", ev.Column, "row", ev.Row, "tile", ev.Tile)
		case DeselectEvent:
			logger.Debug(string(EventDeselect))
		case MatchEvent:
			logger.Info(string(ev.Type()), "first", ev.Pair.First, "second", ev.Pair.Second)
		case ChangeEvent:
			logger.Debug(string(EventShuffle), "tiles", len(ev.After))
		case PlaceEvent:
			logger.Debug(string(EventPlace), "column", ev.Column, "row", ev.Row, "type", ev.TileType)
		case SetupEvent:
			logger.Info(string(EventSetup), "columns", ev.Columns, "rows", ev.Rows)
		case ShuffledEvent:
			logger.Info(string(EventShuffled), "iterations", ev.Iterations)
		}
	}
}
