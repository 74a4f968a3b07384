package service

import "overlysocial/internal/model"

// baseTemplates holds the unmodified per-category narrative. Lookups copy by
// value; the customizer never writes back into this map.
var baseTemplates = map[model.Category]model.ResultTemplate{
	model.CategoryContentCreator: {
		Category: model.CategoryContentCreator,
		Title:    "You're Working Hard, But Your Content Isn't Working For You",
		Subtitle: "You show up every day creating valuable content, but when it comes to booking calls or making sales... nothing.",
		Diagnosis: "Here's what I see happening with your current approach:\n\n" +
			"You show up every day. You share valuable insights. People engage, maybe even follow you. But when it comes to actually booking calls or making sales? …Nothing.\n\n" +
			"If this sounds familiar, don't beat yourself up for it.\n\n" +
			"Most entrepreneurs I work with have this exact problem. Most think they need more followers or viral content. But the truth is much simpler and way more fixable.\n\n" +
			"Your content is doing its job perfectly. It's building awareness and trust. But it's just not guiding people anywhere, and that's costing you serious money.\n\n" +
			"This is what I call the Client Journey Gap, and it's the single biggest reason why business owners stay stuck at getting lots of engagement but no actual clients.\n\n" +
			"Think about the last time someone discovered your content and thought 'wow, this person knows what they're talking about.' What happened next?\n\n" +
			"If you're like most people, probably nothing. They liked your post, maybe followed you, and then... They close LinkedIn and go back to their day. Maybe they'll see your content again in a few days, maybe they won't.\n\n" +
			"But either way, there's no clear path for them to go deeper with you. There's no way for them to gradually warm up to the idea of potentially working with you one day.\n\n" +
			"So they just... disappear.",
		ProblemWhy: "The problem isn't your content quality. You're asking people to make too big of a leap.\n\n" +
			"You're essentially saying: 'Enjoy my free content, and when you're ready to spend $3,000-$10,000, let me know.' That's like asking someone to marry you on the first date.\n\n" +
			"What you need is a bridge. A way for interested people to raise their hand and say 'I want more of this' without committing to a big purchase.\n\n" +
			"If you get 1,000 content views monthly (and you probably get way more), you should be converting 2-5% of those into email subscribers. That's 20-50 people who are interested enough to give you their email address.\n\n" +
			"But right now? You're probably getting close to zero because you don't have anything to offer them.\n\n" +
			"Those 20-50 people monthly turn into 240-600 potential clients annually. Even if just 10% of those eventually bought from you, that's 24-60 additional clients you're missing out on.\n\n" +
			"Every month you don't fix this, you're leaving thousands of dollars on the table while your competitors with inferior content are booking clients because they have systems in place.",
		QuickWin: "Here's something you can do in the next 30 minutes that could literally double your conversion rates:\n\n" +
			"Go to your most popular post from last month - the one that got the most engagement and comments. Right now, add a comment to that post that says: 'If this resonated with you, I created a free [specific resource] that shows you exactly how to [specific outcome they want]. Link in my bio to grab it.'\n\n" +
			"Then create a simple Google Doc with 3-5 actionable tips related to that post's topic. Put it behind a simple email capture (you can use ConvertKit, Mailchimp, or even a Google Form). Update your bio link to point to this resource.\n\n" +
			"Why does this work? Because people who engaged with that post are already warm. They've raised their hand by commenting or liking. You're just giving them a natural next step.\n\n" +
			"This single action often generates 10-20 new email subscribers within 48 hours, and those subscribers convert to clients at a 500% higher rate than cold social media followers.\n\n" +
			"The key is specificity - don't offer a generic PDF guide. Offer something that directly solves the problem your popular post highlighted.",
		ThirtyDayStrategy: "Your 30-Day Conversion System Blueprint:\n\n" +
			"Week 1: Create your lead magnet properly. Not a 47-page PDF that nobody reads, but something that gives a quick win in 15 minutes or less. Think checklist, template, mini-course, or assessment. It should solve ONE specific problem your ideal client has right now.\n\n" +
			"Week 2: Set up your email capture system and create your first nurture email sequence. Start with five emails: deliver the lead magnet plus your origin story, share a framework or strategy to build authority, address their biggest objection to working with someone like you, share a client transformation story, and end with a soft invitation to book a call or learn about your services.\n\n" +
			"Week 3: Implement the content strategy that actually works. Every piece of content should have one of three jobs: Authority posts (70%) where you share frameworks, insights, and behind-the-scenes content. Connection posts (20%) with personal stories, values, and beliefs. Conversion posts (10%) featuring client results, testimonials, and clear calls-to-action to your lead magnet.\n\n" +
			"Week 4: Track and optimize. Which posts drive the most lead magnet downloads? Which emails get the highest open rates? Double down on what works.\n\n" +
			"By day 30, you should have 50-100 new email subscribers and a system that runs itself. The entrepreneurs who actually implement this see results within the first week.",
		OverlySocialIntro: "Hey, my name is Stefany, the founder of OverlySocial, and I've spent the last 5 years helping entrepreneurs turn their content into consistent client bookings.\n\n" +
			"I've seen too many brilliant people struggle with this exact problem. They create amazing content but struggle to convert that attention into revenue.\n\n" +
			"That's why I developed the OverlySocial Method, a proven system that transforms your existing content into a client-generating machine.\n\n" +
			"We don't focus on going viral or gaming algorithms. Instead, we build strategic systems that turn every piece of content into a stepping stone toward working with you.\n\n" +
			"My clients typically see a 300-500% increase in qualified leads within 60 days, not because they create more content, but because every piece of content they create now has a purpose in their client journey.\n\n" +
			"If you want to learn more about how this approach could work for your business, you can connect with me on LinkedIn or check out OverlySocial.com for free resources and case studies.",
	},
	model.CategoryGettingThere: {
		Category: model.CategoryGettingThere,
		Title:    "You're Getting There, But Leaks in Your System Are Costing You",
		Subtitle: "You have some pieces in place, but gaps in your conversion system are bleeding potential clients and revenue",
		Diagnosis: "You're in the most frustrating position possible. You're doing 'all the right things' but not seeing proportional results.\n\n" +
			"You have some of the pieces: maybe a lead magnet, some email subscribers, occasional sales calls. But something's not clicking into place the way it should.\n\n" +
			"Your lead magnet gets some downloads, but they don't turn into calls. Your emails get decent open rates, but people aren't taking action. You book some discovery calls, but the conversion rate feels lower than it should be.\n\n" +
			"Here's the thing - you're not bad at what you do. Your system has gaps and friction points that are bleeding potential clients at every stage.\n\n" +
			"The good news? You're closer than you think. Small improvements in a working system create exponential results.\n\n" +
			"You don't need to start over; you need to identify the leaks and plug them.\n\n" +
			"Most entrepreneurs in your position are missing 1-2 key elements that would transform their entire funnel performance. The difference between a 20% call booking rate and a 60% rate often comes down to fixing one broken step in your sequence.",
		ProblemWhy: "Here's what's actually happening in your system:\n\n" +
			"You're losing people at the transition points. Someone downloads your lead magnet but never opens your follow-up emails. They read your emails but don't click your links. They click your links but don't book a call.\n\n" +
			"Each gap might seem small - maybe you're only losing 20-30% of people at each stage - but compound that across 4-5 steps and you're losing 80% of your potential clients before they even get to a sales conversation.\n\n" +
			"If you're getting 100 new leads per month but only booking 10 calls, that's not a lead quality problem. That's a system problem. Those 90 people who didn't book calls represent thousands in lost revenue.\n\n" +
			"The brutal truth is that most of your competitors aren't better marketers or service providers than you. They just have tighter systems. While you're losing half your prospects between email 2 and email 3, they've optimized that transition and kept 80% engaged.\n\n" +
			"Small improvements compound dramatically in conversion systems.",
		QuickWin: "Here's a 30-minute fix that could increase your call bookings by 50% this week:\n\n" +
			"Look at your email sequence that follows your lead magnet. Find the email where you first mention booking a call or learning about our services. Before that email, add one new email that shares a specific client transformation story.\n\n" +
			"Not just results ('We helped Sarah increase her revenue') but the actual journey: 'Sarah came to us frustrated because she was working 60-hour weeks but barely breaking even. She had leads coming in but couldn't convert them to sales. Within 30 days of implementing our system, she booked 8 new clients and reduced her work hours to 40 per week. The key was fixing her discovery call process - one small change doubled her closing rate.'\n\n" +
			"Then end with: 'If you're facing similar challenges, we have a few spots open for strategy calls this week.'\n\n" +
			"Why does this work? Because people need to see themselves in your success stories before they're ready to take action. This one email often increases call bookings by 40-60% because it bridges the gap between 'this person shares good tips' and 'this person could actually help me.'",
		ThirtyDayStrategy: "Your 30-Day System Optimization Plan:\n\n" +
			"Week 1: Audit every step of your current funnel. Track the numbers: How many people download your lead magnet? How many open email 1? Email 2? Email 3? How many click to your booking page? How many actually book? Identify your biggest drop-off point - that's where you start.\n\n" +
			"Week 2: Fix your biggest leak. If it's between lead magnet and email opens, optimize your email subject lines and sender name. If it's between emails and call bookings, add more social proof and urgency. If it's between call bookings and sales, improve your call preparation process.\n\n" +
			"Week 3: Optimize your content-to-lead magnet bridge. Look at your last 10 posts. How many have clear CTAs to your lead magnet? Add CTAs to your top-performing posts from the last 3 months. Create 2-3 new pieces of content specifically designed to drive lead magnet downloads.\n\n" +
			"Week 4: Implement advanced nurturing tactics. Segment your email list based on engagement levels. Create a separate sequence for highly engaged subscribers. Add a re-engagement campaign for people who haven't opened emails in 30 days. Set up automated follow-ups for people who book calls but don't show up.\n\n" +
			"By day 30, you should see a 30-50% improvement in your overall conversion rates. The key is focusing on one improvement at a time and measuring the impact before moving to the next optimization.",
		OverlySocialIntro: "Hey, my name is Stefany, the founder of OverlySocial, and I specialize in helping entrepreneurs like you who are 'almost there' optimize their conversion systems for maximum results.\n\n" +
			"You already understand the importance of lead magnets, email marketing, and sales calls - you just need someone to help you identify and fix the gaps that are costing you clients.\n\n" +
			"The OverlySocial Optimization Method is specifically designed for businesses that have the foundation in place but need strategic improvements to multiply their results.\n\n" +
			"We use data-driven analysis to find your biggest conversion leaks and implement proven fixes that often double or triple performance within 60 days.\n\n" +
			"My clients in your situation typically see the fastest results because we're not starting from scratch - we're taking what's working and making it work even better.\n\n" +
			"If you're tired of being 'close' and ready to break through to consistent client flow, I'd love to help you optimize your system. You can learn more about our approach at OverlySocial.com or connect with me directly on LinkedIn.",
	},
	model.CategoryConversionPro: {
		Category: model.CategoryConversionPro,
		Title:    "You're a Conversion Pro, But There's Another Level",
		Subtitle: "Your system is working well, but advanced optimization could 2x your results without 2x the work",
		Diagnosis: "You're in the enviable position that most entrepreneurs dream of - you've built a system that actually works.\n\n" +
			"You're getting consistent leads from your content, your email list is growing, your discovery calls are converting at a solid rate, and you're making regular sales.\n\n" +
			"You're in the top 10% of online businesses. Most people would kill for your 'problems.'\n\n" +
			"But here's what we know about high-performers like you: good isn't good enough when great is possible.\n\n" +
			"You can feel that there's another level to reach.\n\n" +
			"Maybe your conversion rates have plateaued.\n\n" +
			"Maybe you're manually doing things that could be automated.\n\n" +
			"Maybe you know your system could handle 2x the volume if it was optimized properly.\n\n" +
			"The challenge at your level isn't fixing what's broken - it's optimizing what's working to perform at an elite level.\n\n" +
			"You need advanced strategies, not basic fixes.\n\n" +
			"You're ready for the kind of optimization that turns a successful business into a scalable, predictable revenue machine.",
		ProblemWhy: "Here's what's actually holding you back:\n\n" +
			"You've hit the ceiling of 'good enough' systems.\n\n" +
			"Your lead magnet works, but it's not optimized for maximum conversions.\n\n" +
			"Your email sequence gets results, but it's not segmented for different types of prospects.\n\n" +
			"Your sales calls close deals, but you're not pre-qualifying as effectively as you could be.\n\n" +
			"At your level, small percentage improvements create massive dollar improvements.\n\n" +
			"If you're currently generating $50K/month and you improve your email-to-call conversion rate from 15% to 25%, that's not just a 10% improvement - that could translate to an extra $15-20K in monthly revenue.\n\n" +
			"But most successful entrepreneurs get comfortable with 'working well' and miss the opportunity to optimize for 'working extraordinarily.'\n\n" +
			"Every month you plateau is a month your competitors might catch up or you miss market opportunities.\n\n" +
			"The gap between good and great isn't usually about working harder - it's about implementing advanced strategies that most people don't even know exist.",
		QuickWin: "Here's a 30-minute optimization that could increase your revenue by 20% this month:\n\n" +
			"Segment your email list based on engagement behavior.\n\n" +
			"Create three segments: Hot (opened 80%+ of emails in last 30 days), Warm (opened 40-80%), and Cold (less than 40%).\n\n" +
			"Then create a separate email sequence for your Hot prospects that's more direct and action-oriented.\n\n" +
			"Instead of 5 nurture emails before asking for a call, send them value in email 1, social proof in email 2, and a direct invitation to book in email 3.\n\n" +
			"Why does this work?\n\n" +
			"Your most engaged prospects don't need as much nurturing - they're already convinced of your expertise and are waiting for you to make an offer.\n\n" +
			"This single change often increases call bookings from highly qualified prospects by 40-60%.\n\n" +
			"Set this up using tags in your email platform (ConvertKit, ActiveCampaign, etc.) and watch your conversion rates jump.\n\n" +
			"Your Hot prospects will book faster, and your Warm prospects will still get the full nurture sequence they need.",
		ThirtyDayStrategy: "Your 30-Day Scale & Optimize Blueprint:\n\n" +
			"Week 1: Implement advanced tracking and attribution. Set up proper conversion tracking to see which content pieces drive the highest-value leads. Use UTM codes on all your social posts. Install proper analytics to track the full customer journey from first touch to sale. Identify your highest-converting content and double down on similar topics.\n\n" +
			"Week 2: Optimize your highest-impact touchpoints. A/B test your lead magnet landing page (try video vs. text, long-form vs. short-form). Test different subject lines for your highest-performing emails. Optimize your booking page with social proof, urgency, and clearer value propositions. Small improvements here compound dramatically.\n\n" +
			"Week 3: Implement advanced automation and personalization. Set up behavior-triggered emails based on specific actions (downloaded X resource, visited pricing page, etc.). Create dynamic content that changes based on how prospects found you. Add retargeting pixels to re-engage people who didn't complete your funnel.\n\n" +
			"Week 4: Scale what's working and eliminate what's not. Identify your most profitable traffic sources and double your investment there. Eliminate or improve underperforming content and campaigns. Create systems to handle 2x the volume without 2x the work.\n\n" +
			"By day 30, you should have a system that's not just working, but working at an elite level with clear scalability built in.",
		OverlySocialIntro: "Hey, my name is Stefany, the founder of OverlySocial, and I work exclusively with high-performing entrepreneurs like you who are ready to scale from good to extraordinary.\n\n" +
			"You already understand conversion optimization - you've built a system that works. But there's a difference between a system that works and a system that's optimized for scale, automation, and maximum profitability.\n\n" +
			"The OverlySocial Scale Method is designed specifically for businesses already generating consistent revenue who want to break through to the next level without burning out or working more hours.\n\n" +
			"We focus on advanced optimization, automation, and scaling strategies that most entrepreneurs never learn.\n\n" +
			"My clients at your level typically see 50-150% increases in revenue within 90 days, not by working more, but by optimizing their existing systems to perform at an elite level.\n\n" +
			"If you're ready to transform your successful business into a revenue machine that scales predictably, I'd love to explore how our advanced strategies could work for your business. You can learn more about our Scale Method at OverlySocial.com or reach out to me directly on LinkedIn.",
	},
}
