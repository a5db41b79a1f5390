package di_test

// Small local types so the wiring helpers can be exercised without pulling
// in the demo packages.

type campus struct {
	Name string
}

type advisor struct {
	Name string
}

type enrollment struct {
	Campus  *campus
	Advisor *advisor
}

func (e *enrollment) SetCampus(c *campus) { e.Campus = c }

func (e *enrollment) SetAdvisor(a *advisor) { e.Advisor = a }
