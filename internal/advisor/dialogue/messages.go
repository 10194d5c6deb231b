package dialogue

// Assistant messages, verbatim from the Korean advisory script.

const (
	msgGreeting = "안녕하세요! 😊 차량 관련 부가가치세 매입세액 공제 여부를 도와드릴게요.\n\n어떤 **업종**에 종사하시나요?"

	msgIndustryDeductible = "✅ 차량 관련 비용 부가가치세 매입공제 **공제가능합니다.**\n\n(택시·자동차학원·자동차임대업 등은 차량을 직접 사용하므로 공제대상입니다.)"

	msgAskVehicle = "알겠습니다. 업종에 따라 직접 공제는 불가하네요.\n이제 **차량명**을 알려주세요. (예: 소나타, 스타렉스 9인승, 봉고 화물 등)"

	// %s: vehicle text, %s: estimated tag(s), %s: seat count or 미기재, %s: rationale
	msgClassificationReport = "입력하신 차량은 **%s** 입니다.\n추정 분류: **%s**, 좌석수: **%s**\n근거: %s"

	msgSeatsUnstated = "미기재"

	msgVehicleDeductible = "✅ 경차 또는 화물차이므로 차량 관련 비용 부가가치세 매입공제 **공제가능합니다.**"

	msgAskSeats = "몇 인승 차량인가요? 숫자만 입력해주세요 (예: 9)"

	// %d: seat count
	msgSeatsDeductible    = "🚐 %d인승 승합차는 8인승 초과이므로 ✅ **공제가능합니다.**"
	msgSeatsNonDeductible = "🚐 %d인승 승합차는 7인승 이하이므로 ❌ **공제불가능합니다.**"

	msgSeatsRetry = "숫자로 입력해주세요. (예: 9)"

	msgPassengerDefault = "❌ 개별소비세 과세 대상 차량이므로 부가가치세 매입세액 **공제 불가능합니다.**\n\n(일반 승용차는 공제 대상이 아닙니다.)"

	msgRestartNotice = "대화를 다시 시작하려면 🔄 **대화 초기화**를 실행해주세요."
)
