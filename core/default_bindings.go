package core

const (
	ScopeGrid       = "grid"
	ScopeBulkSelect = "screen:bulk-select"
)

const (
	ActionQuit       = "quit"
	ActionConfirm    = "confirm"
	ActionRowUp      = "row-up"
	ActionRowDown    = "row-down"
	ActionRangeUp    = "range-up"
	ActionRangeDown  = "range-down"
	ActionPagePrev   = "page-prev"
	ActionPageNext   = "page-next"
	ActionToggleRow  = "toggle-row"
	ActionToggleAll  = "toggle-all"
	ActionBulkSelect = "bulk-select"
	ActionSubmit     = "submit"
	ActionClose      = "close"
)

func DefaultKeyBindings() []KeyBinding {
	grid := []string{ScopeGrid}
	bulk := []string{ScopeBulkSelect}
	return []KeyBinding{
		{Keys: []string{"k", "up"}, Action: ActionRowUp, Description: "row up", Scopes: grid},
		{Keys: []string{"j", "down"}, Action: ActionRowDown, Description: "row down", Scopes: grid},
		{Keys: []string{"shift+up"}, Action: ActionRangeUp, Description: "extend up", Scopes: grid},
		{Keys: []string{"shift+down"}, Action: ActionRangeDown, Description: "extend down", Scopes: grid},
		{Keys: []string{"h", "left", "pgup"}, Action: ActionPagePrev, Description: "prev page", Scopes: grid},
		{Keys: []string{"l", "right", "pgdown"}, Action: ActionPageNext, Description: "next page", Scopes: grid},
		{Keys: []string{"space", "x"}, Action: ActionToggleRow, Description: "toggle row", Scopes: grid},
		{Keys: []string{"a"}, Action: ActionToggleAll, Description: "all on page", Scopes: grid},
		{Keys: []string{"b"}, Action: ActionBulkSelect, Description: "select first n", Scopes: grid},
		{Keys: []string{"enter"}, Action: ActionConfirm, Description: "confirm", Scopes: grid},
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: grid},
		{Keys: []string{"enter"}, Action: ActionSubmit, Description: "select", Scopes: bulk},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: bulk},
	}
}
