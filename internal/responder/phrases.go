package responder

var firstGreetings = []string{
	"Hi there! I'm your friendly financial assistant. How can I help you today?",
	"Hello! I'm here to help with any financial questions or topics you'd like to discuss. What's on your mind?",
	"Hey! I'm your financial assistant. Whether you're interested in investing, saving, or learning about financial concepts, I'm here to help. What would you like to talk about?",
}

var returningGreetings = []string{
	"Hello again! What financial topic would you like to discuss now?",
	"Hi there! Ready to continue our financial conversation. What's on your mind?",
	"Hey! Great to chat again. What financial questions can I help with today?",
}

var howAreYouReplies = []string{
	"I'm doing great! Ready to talk about markets, investments, or any financial topics you're interested in. What's on your mind?",
	"I'm excellent, thanks for asking! Always ready to help with financial questions or discussions. What would you like to explore today?",
	"I'm well, thank you! The world of finance is always changing, and I'm here to help you navigate it. What financial topic would you like to discuss today?",
}

var goodbyeReplies = []string{
	"Goodbye! Remember, the best investment you can make is in yourself. Feel free to come back anytime with your financial questions.",
	"See you later! I'm here whenever you need guidance on financial matters. Have a great day!",
	"Take care! Remember that financial knowledge is a journey, not a destination. I'll be here when you want to continue that journey.",
}

var thanksReplies = []string{
	"You're welcome! I'm happy to help with any other financial questions you might have.",
	"Anytime! Financial literacy is empowering, and I'm glad to be part of your journey.",
	"My pleasure! If you have more questions in the future, don't hesitate to ask.",
}

var jokes = []string{
	"Why don't economists like to go to the beach? Because the tide raises their liquidity concerns.",
	"How many economists does it take to change a light bulb? None. If the light bulb needed changing, the market would have done it by now.",
	"What do you call a financial instrument that's way too complicated? Probably your bank's newest product.",
	"I told my wife she was overreacting when she caught me looking at stock charts at 3am. She said I was being defensive. I said no, I was being a contrarian investor.",
	"Why are Bitcoin investors always calm? Because they've HODL'd onto their feelings.",
	"What's an actuary's favorite candy? Mortality mints.",
	"What did the stock broker say to his friend on the ski slope? That dividend is going downhill fast!",
	"What's a banker's favorite James Bond movie? 'The Spy Who Collateralized Me'.",
	"What's a venture capitalist's favorite song? 'Don't Stop Believing... in Unicorns'.",
}
