package models

// Account is the result of a signup: the new user, their first site, the
// plaintext login code (shown once) and a first session.
type Account struct {
	User      UserDB
	Site      SiteDB
	LoginCode string
	Session   Session
}
