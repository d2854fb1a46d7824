package domain

// Dataset is the full application state persisted as one snapshot document.
// The store owns the single live instance; everything else reads and writes
// through it.
type Dataset struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// Clone returns a deep copy of the dataset so callers can hand out state
// without exposing the store's backing slices.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Accounts:    make([]Account, len(d.Accounts)),
		Departments: make([]Department, len(d.Departments)),
		Employees:   make([]Employee, len(d.Employees)),
		Requests:    make([]Request, len(d.Requests)),
	}
	copy(out.Accounts, d.Accounts)
	copy(out.Departments, d.Departments)
	copy(out.Employees, d.Employees)
	for i, r := range d.Requests {
		items := make([]RequestItem, len(r.Items))
		copy(items, r.Items)
		out.Requests[i] = r
		out.Requests[i].Items = items
	}
	return out
}
