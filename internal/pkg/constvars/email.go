package constvars

const (
	EmailSendBasicEmailSubjectFormat = "From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n"
)

const (
	EmailSubjectAppointmentReminder = "Appointment reminder"
	EmailSubjectLowStock            = "Low stock alert"
	EmailSubjectBatchExpiry         = "Batch expiry alert"

	EmailBodyAppointmentReminder = "Dear %s,\r\n\r\nThis is a reminder of your dental appointment at %s on %s.\r\n\r\nReason: %s\r\n"
	EmailBodyLowStock            = "Product %s (%s) at branch %s is below its minimum level: %d left, minimum %d.\r\n"
	EmailBodyBatchExpiry         = "Batch %s of product %s at branch %s expires on %s with %d units remaining.\r\n"
)
