package services

// Calculation is the envelope callers exchange with the engine: the ordered
// item list and the session settings.
type Calculation struct {
	Items    []LineItem `json:"items"`
	Settings Settings   `json:"settings"`
}

// AssignIDs gives every item without an ID a fresh one. Callers run it
// when they accept new items; the engine never does.
func (c *Calculation) AssignIDs() {
	for i := range c.Items {
		if c.Items[i].ID == "" {
			c.Items[i].ID = NewLineItem(c.Items[i].Name, c.Items[i].Category).ID
		}
	}
}
