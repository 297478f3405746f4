// Package prompt builds the system/user prompt pair for each command.
package prompt

import (
	"fmt"
	"strings"
)

// Pair is a system prompt plus a user prompt, ready for one completion
// request.
type Pair struct {
	System string
	User   string
}

// DefaultAskSystem is the assistant persona used by ask when no override is
// given.
const DefaultAskSystem = "You are NimbusCode, an expert programming assistant. Your goal is to help the user " +
	"write high-quality, efficient, and secure code. Provide clear, concise explanations and code examples. " +
	"Focus on best practices, performance optimization, and security considerations. " +
	"When appropriate, suggest improvements to the user's code or approach."

// InteractiveSystem is the fixed system prompt for interactive sessions.
const InteractiveSystem = "You are NimbusCode, an expert programming assistant in an interactive session. " +
	"Provide helpful, concise responses to the user's coding questions. " +
	"Remember the context of the conversation and refer back to previous exchanges when relevant."

// Ask wraps a free-form question, optionally prefixed with file content as a
// fenced context block. An empty systemOverride selects the default persona.
func Ask(question, fileContent, systemOverride string) Pair {
	user := question
	if fileContent != "" {
		user = fmt.Sprintf("File content:\n```\n%s\n```\n\nPrompt: %s", fileContent, question)
	}
	system := systemOverride
	if system == "" {
		system = DefaultAskSystem
	}
	return Pair{System: system, User: user}
}

// Generate asks for code in the given language from a description.
func Generate(description, language string) Pair {
	return Pair{
		System: fmt.Sprintf("You are NimbusCode, an expert %s developer. Generate high-quality, efficient, "+
			"and secure code based on the user's requirements. Include helpful comments and documentation. "+
			"Focus on best practices and maintainability.", language),
		User: fmt.Sprintf("Generate %s code for the following:\n\n%s\n\n"+
			"Provide complete, working code with appropriate comments and documentation.", language, description),
	}
}

// Improve asks for a review-and-rewrite of the given code.
func Improve(code string) Pair {
	return Pair{
		System: "You are NimbusCode, an expert code reviewer and optimizer. Analyze the provided code and " +
			"suggest improvements. Return the improved code in a markdown code block with the same language " +
			"as the original. Explain your changes clearly but concisely.",
		User: fmt.Sprintf("Please improve the following code. Focus on:\n"+
			"1. Code quality and readability\n"+
			"2. Performance optimizations\n"+
			"3. Security best practices\n"+
			"4. Error handling\n"+
			"5. Documentation\n\n"+
			"Provide the improved code and explain your changes.\n\n```\n%s\n```", code),
	}
}

// Explain asks for an educational breakdown of the given code.
func Explain(code string) Pair {
	return Pair{
		System: "You are NimbusCode, an expert code analyst. Provide a clear, educational explanation of the " +
			"code. Break down complex concepts and use examples where helpful. Your goal is to help the user " +
			"fully understand how the code works.",
		User: fmt.Sprintf("Please explain the following code in detail:\n\n```\n%s\n```\n\n"+
			"Include:\n"+
			"1. Overall purpose and functionality\n"+
			"2. Breakdown of key components\n"+
			"3. How the different parts work together\n"+
			"4. Any potential issues or considerations", code),
	}
}

// Cloud asks for a deployment plan on the given provider (aws, azure, gcp).
func Cloud(description, provider string) Pair {
	name := strings.ToUpper(provider)
	return Pair{
		System: fmt.Sprintf("You are NimbusCode, an expert in cloud architecture and deployment on %s. "+
			"Provide detailed, practical guidance for deploying applications to the cloud. "+
			"Focus on security best practices, cost optimization, and maintainability.", name),
		User: fmt.Sprintf("Generate %s cloud deployment code/instructions for:\n\n%s\n\n"+
			"Include:\n"+
			"1. Required resources and services\n"+
			"2. Infrastructure as Code (if applicable)\n"+
			"3. Deployment steps\n"+
			"4. Security considerations\n"+
			"5. Cost optimization tips", name, description),
	}
}

// platformNames maps platform flags to their display names. Unknown values
// pass through unchanged.
var platformNames = map[string]string{
	"ios":     "iOS (Swift/SwiftUI)",
	"android": "Android (Kotlin)",
	"cross":   "cross-platform (React Native/Flutter)",
}

// PlatformDisplay resolves a platform flag to its display name.
func PlatformDisplay(platform string) string {
	if name, ok := platformNames[strings.ToLower(platform)]; ok {
		return name
	}
	return platform
}

// Mobile asks for app-development guidance targeting the given platform
// (ios, android, cross).
func Mobile(description, platform string) Pair {
	name := PlatformDisplay(platform)
	return Pair{
		System: fmt.Sprintf("You are NimbusCode, an expert in %s mobile app development. "+
			"Provide detailed, practical guidance for building mobile applications. "+
			"Focus on user experience, performance, and maintainable code architecture.", name),
		User: fmt.Sprintf("Generate %s mobile app development code/guidance for:\n\n%s\n\n"+
			"Include:\n"+
			"1. App architecture\n"+
			"2. Key components/screens\n"+
			"3. Implementation details\n"+
			"4. Best practices\n"+
			"5. Performance considerations", name, description),
	}
}
