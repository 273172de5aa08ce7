package task

// DateLayout is the display format for created dates.
const DateLayout = "Jan 2, 2006 15:04"

// ViewModel is the display-ready projection of an Entity. It is
// derived 1:1 and keeps a back-reference to the source entity so a
// screen can hand the original record back to the edit flow.
type ViewModel struct {
	ID                int64
	Title             string
	Description       string
	CreatedDateString string
	IsCompleted       bool
	Entity            Entity
}

// NewViewModel projects an entity into its view model.
func NewViewModel(e Entity) ViewModel {
	return ViewModel{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		CreatedDateString: e.CreatedDate.Format(DateLayout),
		IsCompleted:       e.IsCompleted,
		Entity:            e,
	}
}

// Equal reports whether two view models would render identically.
// Unlike entity identity this covers every displayed field, so a row
// whose content changed compares unequal and forces a re-render even
// when the ID matches.
func (vm ViewModel) Equal(other ViewModel) bool {
	return vm.ID == other.ID &&
		vm.Title == other.Title &&
		vm.Description == other.Description &&
		vm.CreatedDateString == other.CreatedDateString &&
		vm.IsCompleted == other.IsCompleted
}
