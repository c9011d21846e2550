package preview

// Control is the single action offered on a preview page.
type Control string

const (
	ControlDashboard Control = "dashboard"
	ControlEdit      Control = "edit"
	ControlPrint     Control = "print"
)

// Decision is the outcome of classifying a view by viewer and invoice state.
type Decision struct {
	Control Control
	Refresh bool
}

type access struct {
	owner     bool
	confirmed bool
}

var controls = map[access]Control{
	{owner: true, confirmed: true}:   ControlDashboard,
	{owner: true, confirmed: false}:  ControlEdit,
	{owner: false, confirmed: true}:  ControlPrint,
	{owner: false, confirmed: false}: ControlPrint,
}

// Decide selects the control for a view and whether the satoshi value has
// to be recomputed. Only customers viewing a payable, non-empty invoice
// trigger a refresh.
func Decide(isOwner, isConfirmed bool, itemCount int) Decision {
	return Decision{
		Control: controls[access{owner: isOwner, confirmed: isConfirmed}],
		Refresh: !isOwner && !isConfirmed && itemCount > 0,
	}
}
