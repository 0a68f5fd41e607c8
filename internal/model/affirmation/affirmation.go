package affirmation

import (
	"fmt"
	"time"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/daily"
)

// DefaultName is used when the caller did not set a display name.
const DefaultName = "친구"

// Templates returns the affirmation catalog, with the name hint already
// substituted where a template addresses the user directly.
func Templates(name string) []string {
	if name == "" {
		name = DefaultName
	}
	return []string{
		fmt.Sprintf("%s, 오늘은 '완벽'이 아니라 '전진'이면 충분해요. 1%%만 성장해봅시다.", name),
		"딱 25분만 집중 + 5분 휴식(포모도로) 2세트면 탄성이 붙어요.",
		"비교 대신 기록: 어제의 나와 오늘의 나만 비교해요.",
		"뇌는 시작하면 따라옵니다. 2분만 착수 규칙으로 시동을 걸어봐요.",
		"불안은 행동으로만 줄어듭니다. 너무 작아 보이는 일부터 체크 ✔",
	}
}

// Lines picks today's positive lines: the same date always returns the
// same 2 or 3 lines, the count itself drawn from the seeded generator.
func Lines(t time.Time, name string) []string {
	rng := daily.New(t, 0)
	k := 2 + rng.Intn(2)
	return daily.Sample(rng, Templates(name), k)
}
