package auth

// Gate grants admin capability to identities on a fixed allow-list.
type Gate struct {
	allowed map[string]struct{}
}

func NewGate(emails []string) *Gate {
	allowed := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		allowed[e] = struct{}{}
	}

	return &Gate{allowed: allowed}
}

// Allows reports exact, case-sensitive membership of the identity's email.
func (g *Gate) Allows(id *Identity) bool {
	if id == nil || id.Email == "" {
		return false
	}

	_, ok := g.allowed[id.Email]
	return ok
}

// Session is the resolved state of one request: who is signed in and what they may do.
type Session struct {
	Identity *Identity `json:"identity"`
	IsAdmin  bool      `json:"isAdmin"`
	Status   string    `json:"status"`
}

func (s Session) SignedIn() bool {
	return s.Identity != nil
}

func (g *Gate) Session(id *Identity) Session {
	s := Session{
		Identity: id,
		IsAdmin:  g.Allows(id),
	}

	switch {
	case id == nil:
	case s.IsAdmin:
		s.Status = "Signed in as: " + id.Email + " (admin)"
	default:
		s.Status = "Signed in as: " + id.Email + " (no admin access)"
	}

	return s
}
