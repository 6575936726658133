package challenge

// Collection is an ordered set of challenges held in memory between a load
// and the following save. At most one challenge per date is expected, but
// only AddOrReuse enforces it.
type Collection []*Challenge

// FindByDate returns the first challenge dated on date, in collection order.
func (c Collection) FindByDate(date Date) (*Challenge, bool) {
	for _, ch := range c {
		if ch.date == date {
			return ch, true
		}
	}
	return nil, false
}

// AddOrReuse returns the existing challenge for date unchanged when there is
// one, discarding description and markComplete. Otherwise it appends a new
// challenge, completed first when markComplete is set, and reports created.
func (c *Collection) AddOrReuse(description string, date Date, markComplete bool) (ch *Challenge, created bool) {
	if existing, ok := c.FindByDate(date); ok {
		return existing, false
	}

	ch = New(date, description)
	if markComplete {
		ch.Complete()
	}
	*c = append(*c, ch)
	return ch, true
}

// MarkCompletedByDate completes the challenge dated on date in place. ok is
// false when no challenge has that date.
func (c Collection) MarkCompletedByDate(date Date) (ch *Challenge, ok bool) {
	ch, ok = c.FindByDate(date)
	if !ok {
		return nil, false
	}
	ch.Complete()
	return ch, true
}
