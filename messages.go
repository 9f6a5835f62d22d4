package lives

import (
	"github.com/sandertv/gophertunnel/minecraft/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translation keys.
const (
	keyActionBarHearts = "actionbar.limited_lifes.hearts"

	keyHeartsLeft     = "message.limited_lifes.hearts_left"
	keyHeartsRestored = "message.limited_lifes.hearts_restored"
	keyHeartsCritical = "message.limited_lifes.hearts_critical"
	keyLastChance     = "message.limited_lifes.last_chance"
	keyDebtModeActive = "message.limited_lifes.debt_mode.active"

	keyRitualCooldown         = "message.limited_lifes.ritual.cooldown"
	keyRitualFullLives        = "message.limited_lifes.ritual.full_lives"
	keyRitualMissingResources = "message.limited_lifes.ritual.missing_resources"
	keyRitualSuccess          = "message.limited_lifes.ritual.success"
	keyRitualCatalystRequired = "message.limited_lifes.ritual.catalyst_required"

	keyCommandGetSuccess     = "commands.limited_lifes.lives.get.success"
	keyCommandSetSuccess     = "commands.limited_lifes.lives.set.success"
	keyCommandTargetRequired = "commands.limited_lifes.lives.target_required"
	keyCommandOutOfRange     = "commands.limited_lifes.lives.set.out_of_range"
	keyCommandNotPlayer      = "commands.limited_lifes.lives.not_player"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	en := language.English
	message.SetString(en, keyActionBarHearts, "Lives: %d/%d")
	message.SetString(en, keyHeartsLeft, "You lost a life. Lives left: %d")
	message.SetString(en, keyHeartsRestored, "A life was restored. Lives: %d")
	message.SetString(en, keyHeartsCritical, "Critical! Only %d lives remain")
	message.SetString(en, keyLastChance, "Last chance! Resistance and speed for %d seconds")
	message.SetString(en, keyDebtModeActive, "Debt mode is active: you are living on your last life")
	message.SetString(en, keyRitualCooldown, "The altar is still recharging. Try again in %d seconds")
	message.SetString(en, keyRitualFullLives, "Your lives are already full")
	message.SetString(en, keyRitualMissingResources, "The ritual requires %d totems of undying, %d diamond blocks and %d experience levels")
	message.SetString(en, keyRitualSuccess, "The ritual succeeded! Lives: %d/%d")
	message.SetString(en, keyRitualCatalystRequired, "Hold a totem of undying in your main hand to perform the ritual")
	message.SetString(en, keyCommandGetSuccess, "%s has %d/%d lives")
	message.SetString(en, keyCommandSetSuccess, "Set the lives of %s to %d/%d")
	message.SetString(en, keyCommandTargetRequired, "A target player is required")
	message.SetString(en, keyCommandOutOfRange, "Lives must be between %d and %d")
	message.SetString(en, keyCommandNotPlayer, "%s is not a player")

	ru := language.Russian
	message.SetString(ru, keyActionBarHearts, "Жизни: %d/%d")
	message.SetString(ru, keyHeartsLeft, "Вы потеряли жизнь. Осталось жизней: %d")
	message.SetString(ru, keyHeartsRestored, "Жизнь восстановлена. Жизней: %d")
	message.SetString(ru, keyHeartsCritical, "Критично! Осталось жизней: %d")
	message.SetString(ru, keyLastChance, "Последний шанс! Сопротивление и скорость на %d сек.")
	message.SetString(ru, keyDebtModeActive, "Режим долга активен: вы на последней жизни")
	message.SetString(ru, keyRitualCooldown, "Алтарь ещё не восстановился. Попробуйте через %d сек.")
	message.SetString(ru, keyRitualFullLives, "У вас уже максимум жизней")
	message.SetString(ru, keyRitualMissingResources, "Для ритуала нужно: тотемов бессмертия %d, алмазных блоков %d, уровней опыта %d")
	message.SetString(ru, keyRitualSuccess, "Ритуал удался! Жизней: %d/%d")
	message.SetString(ru, keyRitualCatalystRequired, "Держите тотем бессмертия в основной руке, чтобы провести ритуал")
	message.SetString(ru, keyCommandGetSuccess, "У %s %d/%d жизней")
	message.SetString(ru, keyCommandSetSuccess, "Жизни %s установлены на %d/%d")
	message.SetString(ru, keyCommandTargetRequired, "Нужно указать игрока")
	message.SetString(ru, keyCommandOutOfRange, "Количество жизней должно быть от %d до %d")
	message.SetString(ru, keyCommandNotPlayer, "%s не является игроком")
}

// translate formats the message stored under key for the closest supported
// language to locale. Unsupported locales fall back to English.
func translate(locale language.Tag, key string, args ...any) string {
	_, idx, _ := languageMatcher.Match(locale)
	return message.NewPrinter(supportedLanguages[idx]).Sprintf(key, args...)
}

// tone colours a translated line for chat.
type tone string

const (
	toneInfo    tone = "yellow"
	toneGood    tone = "green"
	toneBad     tone = "red"
	toneWarning tone = "gold"
)

func coloured(t tone, msg string) string {
	return text.Colourf("<"+string(t)+">%s</"+string(t)+">", msg)
}

// notify sends a translated chat message to p.
func notify(p Player, t tone, key string, args ...any) {
	p.Message(coloured(t, translate(p.Locale(), key, args...)))
}
