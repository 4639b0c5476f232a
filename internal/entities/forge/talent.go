package forge

// TalentBranch groups talents in the tree
type TalentBranch string

// Talent branches
const (
	BranchDurability  TalentBranch = "DURABILITY"
	BranchQuality     TalentBranch = "QUALITY"
	BranchExploration TalentBranch = "EXPLORATION"
)

// Talent is a node of the talent tree
type Talent struct {
	ID            string       `json:"id"`
	Branch        TalentBranch `json:"branch"`
	Tier          int          `json:"tier"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Cost          int          `json:"cost"`
	RequiredLevel int          `json:"required_level"`

	// ParentID must be unlocked first; empty for a branch root
	ParentID string `json:"parent_id,omitempty"`
}
