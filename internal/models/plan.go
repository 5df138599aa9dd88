package models

// PreGoal is the transient what/why/when triple a user submits before
// refinement. It is never persisted.
type PreGoal struct {
	What string `json:"what"`
	Why  string `json:"why"`
	When string `json:"when"`
}

// Score bounds for task scoring. 5 is the simplest / most important /
// most urgent end of each scale.
const (
	MinTaskScore = 1
	MaxTaskScore = 5
)

// Plan limits given to the model as instructions. The plan generation
// service does not enforce them; over-long model output is accepted as-is.
const (
	MaxMilestonesPerGoal = 5
	MaxTasksPerMilestone = 8
)

// Goal is the top-level persisted objective. Progress is a percentage that
// starts at 0 and is never recomputed by this service.
type Goal struct {
	ID          string  `json:"id" firestore:"-"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Deadline    string  `json:"deadline" firestore:"deadline"`
	Progress    float64 `json:"progress" firestore:"progress"`
}

// Milestone is a phase of a goal. GoalID is a back-reference stamped by
// the plan generation service, never taken from model output.
type Milestone struct {
	ID          string `json:"id" firestore:"-"`
	GoalID      string `json:"goal_id" firestore:"goal_id"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description" firestore:"description"`
	Deadline    string `json:"deadline" firestore:"deadline"`
}

// Task is the atomic unit of work. The three scores range 1..5; urgency 5
// means due within two days, urgency 1 due in two weeks or more.
type Task struct {
	ID            string `json:"id" firestore:"-"`
	GoalID        string `json:"goal_id" firestore:"goal_id"`
	MilestoneID   string `json:"milestone_id" firestore:"milestone_id"`
	Name          string `json:"name" firestore:"name"`
	Description   string `json:"description" firestore:"description"`
	DurationHours int    `json:"duration_hours" firestore:"duration_hours"`
	Simplicity    int    `json:"simplicity" firestore:"simplicity"`
	Importance    int    `json:"importance" firestore:"importance"`
	Urgency       int    `json:"urgency" firestore:"urgency"`
	Completed     bool   `json:"completed" firestore:"completed"`
}

// PlanMilestone pairs a milestone with its tasks in a generated plan.
type PlanMilestone struct {
	Milestone Milestone `json:"milestone"`
	Tasks     []Task    `json:"tasks"`
}

// Plan is the full goal/milestone/task tree returned by plan generation,
// with all store-assigned ids stamped in.
type Plan struct {
	Goal       Goal            `json:"goal"`
	Milestones []PlanMilestone `json:"milestones"`
}
