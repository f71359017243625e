package screens

// User-facing texts.
const (
	MsgLoading = "Yuklanmoqda..."

	MsgContractTitle  = "📄 SHARTNOMA"
	MsgContractAction = "✅ Tasdiqlayman"
	MsgContractFailed = "Xatolik yuz berdi: "

	MsgCoursesTitle      = "📚 KURS TANLANG"
	MsgCoursesLoadFailed = "Kurslarni yuklashda xatolik"
	MsgUnknownCourse     = "Bunday kurs topilmadi"

	MsgPhoneTitle   = "📱 TELEFON RAQAM"
	MsgPhoneBody    = "Iltimos, telefon raqamingizni kiriting.\nMasalan: +998901234567"
	MsgPhoneAction  = "➡️ Davom etish"
	MsgPhoneInvalid = "Telefon raqam noto'g'ri formatda"

	MsgPaymentTitle      = "💳 TO'LOV CHEKI"
	MsgPaymentBody       = "To'lov chekini rasmga olib yuklang.\nAdmin tekshirib, guruhga qo'shadi."
	MsgPaymentPick       = "📸 Rasm yuklash"
	MsgPaymentPicked     = "✅ Rasm tanlandi"
	MsgPaymentAction     = "✅ Yuborish"
	MsgPaymentNoReceipt  = "Iltimos, to'lov chekini yuklang"
	MsgPaymentSubmitted  = "✅ To'lov yuborildi! Admin tekshiradi."
	MsgGenericFailPrefix = "Xatolik: "
)

// AgreementText is the contract shown on the first step.
const AgreementText = `ONLAYN O'QUV SHARTNOMA

Men ushbu shartnoma shartlarini to'liq o'qib chiqdim va quyidagilar bilan roziman:

1. Kursga kirish uchun to'lov amalga oshiriladi
2. Obuna muddati 30 kun
3. Kursdan foydalanish shaxsiy maqsadlarda
4. Qoidalarni buzish guruhdan chiqarilishga sabab bo'ladi

To'lov qilish orqali ushbu shartnomani qabul qilaman.`
