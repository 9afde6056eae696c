package domain

// Ministry is the group a join request targets. Resolved once per trigger
// invocation to translate the request's ministry ID into a display name.
type Ministry struct {
	ID   string `firestore:"-" json:"id"`
	Name string `firestore:"name" json:"name"`
}
