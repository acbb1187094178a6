package backend

// UserRecord is the current-user document returned by the backend. The
// backend omits any section the account does not have, so every nested
// field is a pointer or a zero-value-capable type.
type UserRecord struct {
	User                 *UserInfo `json:"user,omitempty"`
	Region               string    `json:"region,omitempty"`
	MustLinkTwoFactor    bool      `json:"mustLinkTwoFactor,omitempty"`
	MustUpdateProfile    bool      `json:"mustUpdateProfile,omitempty"`
	MustReviewAgreements []string  `json:"mustReviewAgreements,omitempty"`
	Policy               *Policy   `json:"policy,omitempty"`
}

// UserInfo carries the identity block of a [UserRecord].
type UserInfo struct {
	ID         int64  `json:"id"`
	UserRoleID int64  `json:"userRoleId"`
	AuthToken  string `json:"auth_token"`
	Email      string `json:"email"`
	Legacy     bool   `json:"legacy"`
}

// Policy carries account policy sections. Absent sections impose nothing.
type Policy struct {
	Password *PasswordPolicy `json:"password,omitempty"`
}

// PasswordPolicy flags password obligations for the account.
type PasswordPolicy struct {
	MustBeChanged bool `json:"mustBeChanged"`
}

// PasswordMustChange reports whether the record's policy forces a password
// change. Safe on a nil record and with any absent nesting level.
func (r *UserRecord) PasswordMustChange() bool {
	if r == nil || r.Policy == nil || r.Policy.Password == nil {
		return false
	}
	return r.Policy.Password.MustBeChanged
}

// Token returns the auth token of the identity block, or "" when absent.
func (r *UserRecord) Token() string {
	if r == nil || r.User == nil {
		return ""
	}
	return r.User.AuthToken
}
