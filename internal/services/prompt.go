package services

import (
	"fmt"

	"usc-ai-assistant/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Slots: resume line, LinkedIn line, interests line, education line,
// web-search block, web-search clause.
const systemPromptTemplate = `You are a helpful AI assistant for the University of Southern California (USC). You provide accurate, helpful information about USC based on the university context provided.

USC University Context:
- Name: University of Southern California (USC)
- Location: Los Angeles, California
- Type: Private Research University

Key Information:
- Acceptance Rate: 10%%
- Average GPA: 3.8
- Application Deadline: January 15
- Tuition (2023-24): $80,000
- Total Cost: $80,000

Schools: Marshall School of Business, Viterbi School of Engineering, School of Cinematic Arts, Annenberg School for Communication and Journalism, Keck School of Medicine, School of Architecture, School of Dramatic Arts

Popular Majors: Business Administration, Computer Science, Film and Media Studies, Communication, Engineering, Psychology, Biology, Economics, Architecture

Location Benefits: Located in Los Angeles with connections to entertainment, technology, and business industries. Sunny climate, cultural diversity, and numerous internship opportunities.

%s
%s
%s
%s%s

IMPORTANT: Only provide information about University of Southern California based on the context above%s. If asked about other universities, redirect the conversation back to USC.`

// Slots: question, resume note, LinkedIn note, interests line, education
// line, web-search clause, LinkedIn reference.
const userMessageTemplate = `Student Question: %s

%s
%s
%s
%s

Please provide a helpful, accurate response about USC based on the university context provided%s. %s`

// BuildSystemPrompt assembles the fixed USC fact block plus whatever profile
// context is present. The closing instruction keeps the model on-topic.
func (pb *PromptBuilder) BuildSystemPrompt(profile *models.StudentProfile, useWebSearch bool) string {
	linkedin, interests, education := profileFields(profile)

	var resumeLine string
	if profile != nil && profile.Resume != nil {
		resumeLine = "The student has uploaded a resume that you can reference for personalized advice."
	}
	var linkedinLine string
	if linkedin != "" {
		linkedinLine = "Student LinkedIn profile: " + linkedin
	}
	var interestsLine string
	if interests != "" {
		interestsLine = "Student interests: " + interests
	}
	var educationLine string
	if education != "" {
		educationLine = "Current education level: " + education
	}
	var searchBlock, searchClause string
	if useWebSearch {
		searchBlock = "\n\nWeb search is enabled - you can search for the most current USC information, deadlines, program updates, and recent news for your responses."
		searchClause = " and current web search results"
	}

	return fmt.Sprintf(systemPromptTemplate,
		resumeLine, linkedinLine, interestsLine, educationLine, searchBlock, searchClause)
}

// BuildUserMessage wraps the literal question with the same profile context
// lines, with explicit "not provided" defaults for resume and LinkedIn.
func (pb *PromptBuilder) BuildUserMessage(question string, profile *models.StudentProfile, useWebSearch bool) string {
	linkedin, interests, education := profileFields(profile)

	resumeNote := "No resume uploaded."
	if profile != nil && profile.Resume != nil {
		resumeNote = "The student has uploaded a resume for context."
	}
	linkedinNote := "No LinkedIn profile provided."
	if linkedin != "" {
		linkedinNote = "Student LinkedIn profile: " + linkedin
	}
	var interestsLine string
	if interests != "" {
		interestsLine = "Student interests: " + interests
	}
	var educationLine string
	if education != "" {
		educationLine = "Current education level: " + education
	}
	var searchClause string
	if useWebSearch {
		searchClause = ". Use web search to find the most current USC information, admission requirements, deadlines, and program details to enhance your response"
	}
	var linkedinRef string
	if linkedin != "" {
		linkedinRef = "You can reference the LinkedIn profile to understand the student's professional background and experience."
	}

	return fmt.Sprintf(userMessageTemplate,
		question, resumeNote, linkedinNote, interestsLine, educationLine, searchClause, linkedinRef)
}

func profileFields(profile *models.StudentProfile) (linkedin, interests, education string) {
	if profile == nil {
		return "", "", ""
	}
	return strVal(profile.LinkedinURL), strVal(profile.Interests), strVal(profile.CurrentEducation)
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
