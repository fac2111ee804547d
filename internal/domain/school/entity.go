package school

// School is the tenant record every teacher and attendance record hangs off.
type School struct {
	ID   string `json:"school_id"`
	Name string `json:"school_name"`
}
