package reports

// Request asks the reporter for one month's printable report. Month is
// formatted as YYYY-MM.
type Request struct {
	UserID int64  `json:"userId"`
	Month  string `json:"month"`
}
