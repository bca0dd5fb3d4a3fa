package constants

// Permission keys stored in a group's serialized permission list.
const (
	PermCreateBoard = "create_board"
	PermEditBoard   = "edit_board"
	PermCreateTask  = "create_task"
	PermEditTask    = "edit_task"
	PermDeleteTask  = "delete_task"
)

// AllPermissions is the fixed enumeration shown on the admin group form.
var AllPermissions = []string{
	PermCreateBoard,
	PermEditBoard,
	PermCreateTask,
	PermEditTask,
	PermDeleteTask,
}

// System setting keys. Snake case is canonical.
const (
	SettingLogoText           = "logo_text"
	SettingAdminRoleName      = "admin_role_name"
	SettingAllowBoardCreation = "allow_user_board_creation"
)

// DefaultColumns seed every new board, orders 0..2.
var DefaultColumns = []string{"To Do", "In Progress", "Done"}

// DoneColumnTitle marks tasks as finished for dashboard and listing purposes.
const DoneColumnTitle = "Done"

// AdminGroupSentinel is the pseudo group id the admin user form submits to
// create an administrator instead of a group member.
const AdminGroupSentinel = "admin"

// Deadline ranges accepted by the upcoming-deadlines listing.
const (
	RangeDay     = "day"
	RangeWeek    = "week"
	RangeMonth   = "month"
	RangeAll     = "all"
	RangeOverdue = "overdue"
)
