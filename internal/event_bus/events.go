package event_bus

const (
	CalendarEventAddedType   EventType = "calendar.event.added"
	CalendarEventDeletedType EventType = "calendar.event.deleted"
	ShoppingItemAddedType    EventType = "shopping.item.added"
	ShoppingItemDeletedType  EventType = "shopping.item.deleted"
	ShoppingItemToggledType  EventType = "shopping.item.toggled"
	ShoppingItemsClearedType EventType = "shopping.items.cleared"
)

type CalendarEventAdded struct {
	ID    string
	Title string
	Date  string
	Time  string
	Color string
}

type CalendarEventDeleted struct {
	ID string
}

type ShoppingItemAdded struct {
	ID       string
	Name     string
	Quantity string
	AddedBy  string
}

type ShoppingItemDeleted struct {
	ID string
}

type ShoppingItemToggled struct {
	ID        string
	Name      string
	Completed bool
}

type ShoppingItemsCleared struct {
	Removed   int
	Remaining int
}
