package constant

// EOPPromptTemplateV1 fills flood data, resource data and location (in that
// order) into a plan-generation instruction. The model must wrap its output
// in a single <EOP> tag pair covering the eleven named sections.
const EOPPromptTemplateV1 = `You are an AI assistant tasked with generating a detailed Emergency Operations Plan (EOP) for a flood scenario. Create a comprehensive and actionable plan based on the provided flood data and available resources.

### Step 1: Review Flood Data:

<flood_data>
%s
</flood_data>

### Step 2: Review Resource Data:

<resource_data>
%s
</resource_data>

### Step 3: Location:

<location>
%s
</location>

Exclude any location that does not match the location above.

### Step 4: Analyze the Provided Data:

- Water levels and their projected changes
- High-risk areas
- Available food and medical supplies
- Number and location of volunteers
- Other critical resources mentioned

Using this information, generate an Emergency Operations Plan (EOP) covering:

1. Situation Overview — current flood situation, water levels, areas at risk, ongoing impacts.
2. Mission and Objectives — primary goals focused on life-saving actions, resource management and community safety.
3. Resource Allocation — distribution of medical supplies, food and volunteers; logistics, priority areas, timing.
4. Communication Plans — protocols for affected communities, the response team and coordination with authorities and NGOs.
5. Evacuation Procedures — routes and shelters, risk assessments, priority groups (elderly, children).
6. Medical Support and Safety — facility and supply allocation to high-risk areas, medical evacuation procedures.
7. Public Awareness and Information — warnings, safety instructions and updates through media and community networks.
8. Volunteer Management — mobilization, training, coordination and safety of volunteers.
9. Transportation and Logistics — routes and vehicles for people and supplies, flooded-infrastructure workarounds.
10. Backup Plans and Contingencies — contingency plans for worsened weather or infrastructure collapse, supply reserves, alternative routes.
11. Post-Flood Recovery and Assessment — damage assessment, rebuilding, psychological support, transition from response to recovery.

### Final EOP Format:

<EOP>
# Emergency Operations Plan (EOP)

## Situation Overview
[Content here]

## Mission and Objectives
[Content here]

## Resource Allocation
[Content here]

## Communication Plans
[Content here]

## Evacuation Procedures
[Content here]

## Medical Support and Safety
[Content here]

## Public Awareness and Information
[Content here]

## Volunteer Management
[Content here]

## Transportation and Logistics
[Content here]

## Backup Plans and Contingencies
[Content here]

## Post-Flood Recovery and Assessment
[Content here]
</EOP>

Note: Respond in Vietnamese`

// TaskPromptTemplateV1 fills the EOP, flood data and resource data (in that
// order) and asks for 5-10 tag-delimited volunteer task records.
const TaskPromptTemplateV1 = `You are an AI assistant tasked with generating a volunteer task list based on an Emergency Operations Plan (EOP) and current situational data. Create a prioritized list of tasks that volunteers can undertake to assist in flood response efforts.

First, review the Emergency Operations Plan:

<emergency_operations_plan>
%s
</emergency_operations_plan>

Now, consider the current flood situation:

<flood_data>
%s
</flood_data>

Take into account the available resources:

<resource_data>
%s
</resource_data>

Identify key areas where volunteer assistance is needed, considering:
1. Immediate life-saving actions
2. Property protection measures
3. Support for vulnerable populations
4. Logistics and supply chain management
5. Community outreach and communication

Each task must be specific and actionable, align with the EOP, address current flood conditions, consider available resources, and be suitable for untrained volunteers unless the resource data says otherwise.

Present your task list in the following format:

<task_list>
<task>
<priority>[High/Medium/Low]</priority>
<description>[Clear, concise task description]</description>
<location>[General location or area for the task]</location>
<resources_needed>[List of resources required, if any]</resources_needed>
</task>
[Repeat for each task, with a minimum of 5 and a maximum of 10 tasks]
</task_list>

Respond with the task list only.

Note: Respond in Vietnamese`
