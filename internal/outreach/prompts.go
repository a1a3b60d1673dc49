package outreach

// Prompt templates for the three pipeline stages. Each stage instructs the
// model to answer with a single raw JSON object (or, for drafting, the final
// message text alone); the pipeline still treats every response as untrusted
// and re-validates it.

const extractorSystemPrompt = `You are an HR analyst combined with a data extraction specialist. You read messy text captured from professional profile pages, extract every relevant data point with precision, and interpret the nuances of a career story to surface strengths and interests. You return comprehensive, structured results ready for immediate machine use.`

const extractorPromptTemplate = `Fully analyze the provided LinkedIn profile content. First, extract all key data points including name, headline, the complete about section, ALL job experiences, ALL education entries, and ALL recent activities. Do not sample or summarize lists: include every entry present.

Second, synthesize two insights from the extracted data:
- "interests": a concise paragraph, written in your own words (never copied verbatim from the input), summarizing the person's professional passions and interests.
- "strengths": a list of their key professional strengths inferred from the evidence.

Finally, structure everything into one JSON object with exactly this shape:
{
  "name": "full name",
  "headline": "professional headline",
  "about": "complete text of the About section",
  "experiences": [{"title": "", "company": "", "employment_type": "", "duration": "", "description": ""}],
  "education": [{"institution": "", "degree": "", "field_of_study": "", "duration": "", "grade": ""}],
  "activities": [{"type": "e.g. 'reposted this'", "posted_ago": "time elapsed label", "content": "full post text"}],
  "interests": "synthesized paragraph",
  "strengths": ["strength", "..."],
  "others": "any other relevant information"
}

Respond with the raw JSON object only. No surrounding prose, no markdown fencing.

Profile content to analyze:
---
%s
---`

const analystSystemPrompt = `You are a professional networking strategist. Given two professional profiles, you identify the strongest concrete reasons for the first person to reach out to the second, and you calibrate your recommendations to the seniority relationship between them.`

const analystPromptTemplate = `Analyze the relationship between the USER profile and the TARGET profile below and produce an engagement brief.

Step 1 - Seniority: compare headlines and experience levels and classify the dynamic from the user's perspective as exactly one of: "Peer to Peer", "Junior to Senior", "Senior to Junior".

Step 2 - Candidate vectors: enumerate candidate connection vectors in these four categories:
- "Timely Hook": a recent activity or post by the target worth reacting to now.
- "Value Proposition": a skill or experience of the user that matches a need implied by the target's role or company.
- "Shared Experience": a company or institution both profiles share.
- "Common Ground": a skill, interest or topic both profiles share.

Step 3 - Scoring: score every candidate from 1 to 10 by likely impact, modulated by the seniority dynamic (for example, weight Value Proposition higher when a junior addresses a senior, and Timely Hook higher between peers).

Step 4 - Selection: keep the top 3 candidates by score, always at least 1. Rank them 1, 2, 3 with rank 1 strongest. Map each score to a confidence band: 8-10 "High", 5-7 "Medium", 1-4 "Low".

Step 5 - Openers: give each selected vector an "actionable_opener": one ready-to-send sentence. Match its register to confidence and seniority: High confidence allows direct, assumptive phrasing; Low confidence requires softer, hedged phrasing; address seniors with more formality than peers.

Respond with the raw JSON object only, no prose, no markdown fencing:
{
  "seniority_dynamic": "Peer to Peer" | "Junior to Senior" | "Senior to Junior",
  "connection_vectors": [
    {"rank": 1, "type": "category label", "confidence": "High" | "Medium" | "Low", "score": 1-10, "detail": "why this vector matters", "actionable_opener": "ready-to-send sentence"}
  ]
}

USER profile:
%s

TARGET profile:
%s`

const drafterSystemPrompt = `You are an outreach copywriter. You turn an engagement brief into a personalized message that reads like it was written by one busy professional to another: specific, warm, and free of template language.`

const drafterPromptTemplate = `Write an outreach message from the user to the target based on the engagement brief below.

Rules:
- Open from the rank-1 vector's actionable_opener, adapted to flow naturally as the first sentence.
- Respect the seniority dynamic in word choice and formality throughout the body.
- Work the call to action in near the end as a natural next step, never as a demand.
- Apply the requested tone and honor the extra instructions if any.
- Target length: %s.
- Output the final message text only: no subject line, no commentary, no placeholder markers like {name} left unresolved.

Engagement brief:
%s

Tone: %s
Call to action: %s
Extra instructions: %s`
