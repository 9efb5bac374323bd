package domain

var defaultDeck = []Entry{
	{ID: "default-01", Word: "Stakeholder", Meaning: "Bên liên quan", Example: "Identify every stakeholder before planning the project."},
	{ID: "default-02", Word: "Deliverable", Meaning: "Sản phẩm bàn giao", Example: "The first deliverable is due at the end of the sprint."},
	{ID: "default-03", Word: "Milestone", Meaning: "Cột mốc", Example: "Passing the design review is a key milestone."},
	{ID: "default-04", Word: "Scope creep", Meaning: "Phình phạm vi", Example: "Uncontrolled change requests led to scope creep."},
	{ID: "default-05", Word: "Baseline", Meaning: "Đường cơ sở", Example: "Compare actual cost against the cost baseline."},
	{ID: "default-06", Word: "Mitigate", Meaning: "Giảm thiểu", Example: "We added a buffer to mitigate schedule risk."},
	{ID: "default-07", Word: "Constraint", Meaning: "Ràng buộc", Example: "Budget is the main constraint on this project."},
	{ID: "default-08", Word: "Charter", Meaning: "Điều lệ dự án", Example: "The sponsor signed the project charter."},
	{ID: "default-09", Word: "Backlog", Meaning: "Danh sách công việc tồn đọng", Example: "The product owner prioritizes the backlog."},
	{ID: "default-10", Word: "Escalate", Meaning: "Chuyển lên cấp cao hơn", Example: "Escalate the issue to the sponsor if it blocks delivery."},
	{ID: "default-11", Word: "Procurement", Meaning: "Mua sắm", Example: "Procurement selected two vendors for the bid."},
	{ID: "default-12", Word: "Retrospective", Meaning: "Buổi họp cải tiến", Example: "The team agreed on two actions in the retrospective."},
}

// DefaultDeck returns a fresh copy of the bundled vocabulary deck
func DefaultDeck() []Entry {
	return cloneEntries(defaultDeck)
}
