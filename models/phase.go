package models

// Phase is a time-bounded stage of a project
type Phase struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	Status      ProjectStatus `json:"status"`
	Tasks       []Task        `json:"tasks"`
}

// Task is a unit of work within a phase. AssignedTo is free text.
type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	AssignedTo  *string       `json:"assignedTo,omitempty"`
	Invoices    []Invoice     `json:"invoices"`
}

// Clone returns a deep copy of the phase
func (ph Phase) Clone() Phase {
	out := ph
	out.Tasks = make([]Task, len(ph.Tasks))
	for i, task := range ph.Tasks {
		out.Tasks[i] = task.Clone()
	}
	return out
}

// Normalize replaces a missing task list with an empty one, recursively
func (ph *Phase) Normalize() {
	if ph.Tasks == nil {
		ph.Tasks = []Task{}
	}
	for i := range ph.Tasks {
		if ph.Tasks[i].Invoices == nil {
			ph.Tasks[i].Invoices = []Invoice{}
		}
	}
}

// Invoices returns every invoice owned by the phase's tasks
func (ph Phase) Invoices() []Invoice {
	var invoices []Invoice
	for _, task := range ph.Tasks {
		invoices = append(invoices, task.Invoices...)
	}
	return invoices
}

// FindTask returns the index of the task with the given id, or -1
func (ph Phase) FindTask(taskID string) int {
	for i, task := range ph.Tasks {
		if task.ID == taskID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	out := t
	if t.AssignedTo != nil {
		assigned := *t.AssignedTo
		out.AssignedTo = &assigned
	}
	out.Invoices = make([]Invoice, len(t.Invoices))
	for i, invoice := range t.Invoices {
		out.Invoices[i] = invoice.Clone()
	}
	return out
}

// FindInvoice returns the index of the invoice with the given id, or -1
func (t Task) FindInvoice(invoiceID string) int {
	for i, invoice := range t.Invoices {
		if invoice.ID == invoiceID {
			return i
		}
	}
	return -1
}
