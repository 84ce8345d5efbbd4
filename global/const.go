package global

const (
	AppVersion = "1.0.0" // project version shown in logs and /health

	// Gin context key for the authenticated staff subject (set by the auth middleware).
	CtxStaffKey = "staff"

	// StaffSubject is the JWT "sub" of staff tokens; there is a single shared staff login.
	StaffSubject = "staff"

	// Redis list that receives structured app logs.
	LogsKey = "logs:app"

	// Download names used by the export endpoint.
	ExportCSVName  = "invitados.csv"
	ExportXLSXName = "invitados.xlsx"
)
