package model

// Rank is the user's learning rank, carried in the auth token.
type Rank string

const (
	RankJunior Rank = "JUNIOR"
	RankSenior Rank = "SENIOR"
	RankMaster Rank = "MASTER"
)

var rankOrder = map[Rank]int{
	RankJunior: 1,
	RankSenior: 2,
	RankMaster: 3,
}

// ParseRank maps an arbitrary claim value onto a known rank.
// Unknown or empty values collapse to RankJunior so downstream
// comparisons never see an undefined rank.
func ParseRank(s string) Rank {
	r := Rank(s)
	if _, ok := rankOrder[r]; !ok {
		return RankJunior
	}
	return r
}

// RanksUpTo lists every rank at or below r, for "rank or below" filters.
func RanksUpTo(r Rank) []Rank {
	out := make([]Rank, 0, 3)
	for _, candidate := range []Rank{RankJunior, RankSenior, RankMaster} {
		if rankOrder[candidate] <= rankOrder[r] {
			out = append(out, candidate)
		}
	}
	return out
}

// AtLeast reports whether r meets the given minimum rank.
func (r Rank) AtLeast(min Rank) bool {
	return rankOrder[r] >= rankOrder[min]
}

// Role is a member's role within a channel.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// CanModerate reports whether the role may pin messages and edit channel settings.
func (r Role) CanModerate() bool {
	return r == RoleOwner || r == RoleAdmin
}
