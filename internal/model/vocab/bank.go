package vocab

// Bank returns the seed TOEIC word bank. Extend freely; the daily
// selection adapts to any catalog size.
func Bank() []Entry {
	return []Entry{
		{Word: "allocate", POS: "v.", Meaning: "할당하다", Example: "The manager allocated more resources to the project.", ExampleKR: "관리자는 그 프로젝트에 더 많은 자원을 할당했다."},
		{Word: "amendment", POS: "n.", Meaning: "수정, 개정", Example: "The contract requires an amendment to extend the deadline.", ExampleKR: "마감 연장을 위해 계약서에 개정이 필요하다."},
		{Word: "appraisal", POS: "n.", Meaning: "평가", Example: "Annual performance appraisals are scheduled for next week.", ExampleKR: "연간 성과 평가는 다음 주에 예정되어 있다."},
		{Word: "attain", POS: "v.", Meaning: "달성하다", Example: "We attained our quarterly sales target.", ExampleKR: "우리는 분기 매출 목표를 달성했다."},
		{Word: "backlog", POS: "n.", Meaning: "미처리분, 밀린 일", Example: "The team is working through a backlog of support tickets.", ExampleKR: "팀은 밀린 지원 티켓을 처리 중이다."},
		{Word: "benchmark", POS: "n./v.", Meaning: "기준, 기준으로 삼다", Example: "We benchmarked our service against industry leaders.", ExampleKR: "우리는 업계 선도 기업을 기준으로 서비스를 비교했다."},
		{Word: "contingency", POS: "n.", Meaning: "우발 사태, 비상 대비", Example: "Please prepare a contingency plan for potential delays.", ExampleKR: "잠재적 지연에 대비한 비상 계획을 준비해 주세요."},
		{Word: "deduct", POS: "v.", Meaning: "공제하다", Example: "Taxes will be deducted from your paycheck.", ExampleKR: "세금은 급여에서 공제될 것이다."},
		{Word: "discrepancy", POS: "n.", Meaning: "불일치", Example: "The audit found a discrepancy in the inventory count.", ExampleKR: "감사에서 재고 수량의 불일치가 발견되었다."},
		{Word: "feasible", POS: "adj.", Meaning: "실현 가능한", Example: "The proposal is financially feasible.", ExampleKR: "그 제안은 재정적으로 실현 가능하다."},
		{Word: "incentive", POS: "n.", Meaning: "장려금, 유인책", Example: "Employees received incentives for meeting deadlines.", ExampleKR: "직원들은 마감 준수에 대한 장려금을 받았다."},
		{Word: "liability", POS: "n.", Meaning: "책임, 부채", Example: "The company has no liability for lost items.", ExampleKR: "회사는 분실물에 대한 책임이 없다."},
		{Word: "logistics", POS: "n.", Meaning: "물류, 운영 관리", Example: "We need to finalize the event logistics.", ExampleKR: "행사 운영 계획을 마무리해야 한다."},
		{Word: "negotiate", POS: "v.", Meaning: "협상하다", Example: "They negotiated better terms for the supplier.", ExampleKR: "그들은 공급업체와 더 나은 조건을 협상했다."},
		{Word: "overhead", POS: "n.", Meaning: "간접비", Example: "Cutting overhead can improve profitability.", ExampleKR: "간접비를 줄이면 수익성이 개선될 수 있다."},
		{Word: "procurement", POS: "n.", Meaning: "조달", Example: "The procurement team issued a request for proposals.", ExampleKR: "조달 팀이 제안요청서를 발행했다."},
		{Word: "redundant", POS: "adj.", Meaning: "불필요한, 중복의", Example: "Some redundant processes were eliminated.", ExampleKR: "일부 중복된 프로세스가 제거되었다."},
		{Word: "reimburse", POS: "v.", Meaning: "상환하다, 변제하다", Example: "Travel expenses will be reimbursed within a week.", ExampleKR: "여비는 일주일 내에 상환된다."},
		{Word: "retention", POS: "n.", Meaning: "유지, 보유", Example: "Improving customer retention is our top priority.", ExampleKR: "고객 유지율 향상이 최우선 과제다."},
		{Word: "viable", POS: "adj.", Meaning: "실행 가능한", Example: "Is the timeline viable for the team?", ExampleKR: "그 일정이 팀에 실행 가능한가요?"},
	}
}
