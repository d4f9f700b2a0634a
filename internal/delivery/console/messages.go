// messages.go contains the texts shown by the console game.

package console

// Headers.
const (
	titleWelcome  = "Welcome to the Grammar Genius Game!"
	titleMainMenu = "Main Menu"
)

// Prompts. Any input dismisses a confirmation prompt.
const (
	msgPressEnterToContinue  = "\nPress Enter to continue..."
	msgEnterChoice           = "Enter your choice: "
	msgPressEnterToStart     = "Press Enter to start the questions..."
	msgPressEnterToReturn    = "Press Enter to return to the main menu..."
	msgQuestionFormat        = "Question %d: Please write a sentence using %s.\nYour answer: "
	msgSelectTense           = "Select a tense to practice:"
	msgMenuItemFormat        = "%s. %s"
	msgExamples              = "Examples:"
	msgExampleBullet         = "- "
	msgPracticeIntroFormat   = "Now, let's practice %s!"
	msgPracticeRulesFormat   = "Answer the following %d questions using the %s."
	msgLessonCompletedFormat = "Great job! You've completed the %d questions for %s."
)

const (
	msgInvalidChoice = "Invalid choice, please try again."
	msgFarewell      = "Thanks for playing! Keep practicing and shining brightly in your English journey!"
)

const msgIntroduction = "In this game, you'll practice using English verb tenses by answering questions.\n" +
	"Here's how it works:\n" +
	"- From the main menu, select a tense you'd like to practice.\n" +
	"- We'll show you a brief explanation and a few example sentences.\n" +
	"- Then, you'll answer 10 questions in that tense.\n" +
	"- After each answer, you'll receive a motivational message that grows more enthusiastic!\n" +
	"Ready to become a grammar hero? Let's begin!"
