// Package prompts holds the fixed prompt templates for the goal pipeline
// and the placeholder substitution used to fill them.
package prompts

// ProfileSystem instructs the model to turn questionnaire answers into a
// narrative profile with growth opportunities.
const ProfileSystem = `Using the following personality assessment responses, create a detailed profile that analyzes personality traits, behavioral patterns, motivations, and potential strengths/areas for growth. Include specific recommendations tailored to the individual's profile.

Questionnaire:

1. Openness: "When faced with new ideas or challenges, how likely are you to explore them enthusiastically?"
   Response options: Very Unlikely - Unlikely - Neutral - Likely - Very Likely
2. Conscientiousness: "How often do you plan your tasks in advance and stick to your plans?"
   Response options: Rarely - Sometimes - Often - Always
3. Extraversion: "You are in a group setting with new people. How likely are you to initiate a conversation?"
   Response options: Very Unlikely - Unlikely - Neutral - Likely - Very Likely
4. Agreeableness: "When making decisions, how much do you consider other people's feelings or preferences?"
   Response options: Not at All - A Little - Somewhat - A Lot - Always
5. Neuroticism: "How often do you feel stressed or anxious about everyday situations?"
   Response options: Rarely - Sometimes - Often - Always
6. "What are your main passions or interests?"
7. "What are your key life goals, and how do you plan to achieve them?"

<instructions>
1. Provide an overall Personality Summary in one paragraph.
2. Provide Growth Opportunities: suggestions to be more efficient and motivated, and personal development recommendations based also on the life goals and passions, in one paragraph.
</instructions>`

// ProfileUser carries the raw questionnaire answers.
const ProfileUser = `Questionnaire Responses: $RESPONSES

Let's think step by step`

// SmartGoalSystem instructs the model to refine a what/why/when goal into
// a SMART statement, taking the user's profile into account.
const SmartGoalSystem = `You are an expert in goal setting and goal refinement.
You will help the user refine their goal based on What, Why and When,
but also on their profile.

<instructions>
1. Transform the following goal into a SMART (Specific, Measurable, Achievable, Relevant, Time-bound) format.
2. Reformulate the goal as a SMART goal in 2 sentences maximum.
</instructions>

<example>
	Input:
	Goal:
	What: Start a side business
	Why: To create additional income stream and pursue passion in photography
	When: Within 6 months
	Profile:
	Open, conscientious, and creative, with passions in art and technology.

	Output:
	Launch a side photography business within six months, earning
	$500 in revenue through 10 completed projects, combining creativity
	and organization to align with my passion and financial goals
</example>`

// SmartGoalUser carries the pre-goal triple and the stored profile text.
const SmartGoalUser = `Input:
Goal:
What: $WHAT
Why: $WHY
When: $WHEN
Profile:
$PROFILE

Let's think step by step

Output:
`

// PlanSystem is the work-breakdown-structure prompt that turns a
// validated SMART goal into milestones and scored tasks. The milestone and
// task limits are instructions to the model only; the service accepts
// whatever comes back.
const PlanSystem = `You are an expert in project management. You are tasked to use your skillset, especially WBS, to help with the following goal.

<instructions>
	1. Define the Project Scope: clearly define the goal's objectives and deliverables.
	2. Break Down the Scope into Major Milestones: divide the goal into high-level deliverables or phases.
	3. Decompose Deliverables into Tasks: break each milestone into smaller, specific tasks.
	4. Maximum 5 milestones.
	5. Maximum 8 tasks per milestone.
	6. Give the goal and each milestone a realistic deadline (YYYY-MM-DD) consistent with the goal's timeframe.

	For each task:

	- Be specific and precise
	- Add the duration (in hours)
	- Add a simplicity score (from 1-5) with 5 being the most simple
	- Add an importance score (from 1-5) with 5 being the most important
	- Add an urgency score (from 1-5) with 5 being the most urgent
	- An urgent task (urgency score == 5) is a task that has to be done in 2 days or less. A non-urgent task (urgency score == 1) is a task that has to be done in 2 weeks or more. Urgency score is linear between -2 weeks and -2 days.
	- Make sure that it is finishable and not an immeasurable process
</instructions>`

// PlanUser carries the validated SMART goal.
const PlanUser = `Goal: $SMART_GOAL

Let's think step by step`
