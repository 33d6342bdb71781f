// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"time"

	"github.com/olegiv/fitblog-go/internal/model"
)

// articles is the static article table. Add new articles here; slugs are
// immutable once published.
var articles = []model.Article{
	{
		Slug:  "why-you-should-not-sweat-resistance-training",
		Title: "Your Blood is Needed in the Muscle You Train, Not in Your Periphery to Dissipate Heat!",
		Excerpt: "Sweating can look like proof of a great workout, but in strength training it often " +
			"signals heat stress that diverts blood away from working muscles and limits performance and growth.",
		Body: `For decades, sweat has been celebrated as proof of a good workout. The more you sweat, the harder you worked — or so we thought.

Modern exercise physiology shows the opposite: sweating is a sign of inefficiency, not effectiveness, especially in resistance training.

When you sweat, your body is trying to cool itself. Blood is redirected away from your muscles to your skin to release heat — up to **50% of your blood flow** can shift to the periphery before you even begin to sweat. Your working muscles receive less oxygen, fewer nutrients, and fewer building blocks for protein synthesis.

Stanford Professor H. Craig Heller and his team demonstrated that cooling muscles between strength sessions can dramatically enhance performance: athletes could perform more work, recover faster, and gain strength more efficiently than through traditional high-sweat training.

## Scientific References

- H. Craig Heller (Stanford University) — Performance enhancement with controlled cooling (2012): https://pubmed.ncbi.nlm.nih.gov/22076097/
- Périard, Eijsvogels & Daanen (2021) — [Exercise under heat stress](https://pubmed.ncbi.nlm.nih.gov/33829868/), Physiological Reviews 101(4):1873-1979.
- Kenny et al. (2022) — Heat stress and exercise performance: https://pubmed.ncbi.nlm.nih.gov/35020830/`,
		CoverImage: "/Sweat.png",
		IntroImage: "/SweatText_Picture.png",
		Date:       time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC),
		Author:     model.Author{Name: "Thomas Stämpfli", Avatar: "/thomas-stampfli_inSuit.jpg"},
		ReadTime:   "3 min read",
		Translations: map[string]model.Translation{
			"de": {
				Title: "Dein Blut gehört in den trainierten Muskel – nicht in die Peripherie zur Wärmeabgabe!",
				Excerpt: "Schwitzen wirkt wie ein Beweis für ein gutes Training – im Krafttraining ist es jedoch oft " +
					"ein Zeichen von Hitzestress, der Blut aus den Muskeln abzieht und Leistung sowie Wachstum begrenzt.",
				Body: `Jahrzehntelang galt Schweiß als Beweis für ein gutes Training. Je mehr du schwitzt, desto härter hast du gearbeitet – so dachten wir.

Die moderne Trainingsphysiologie zeigt jedoch oft das Gegenteil: Schwitzen ist ein Zeichen von Ineffizienz, nicht von Effektivität – besonders im Krafttraining.

Wenn du schwitzt, versucht dein Körper zu kühlen. Dafür wird Blut aus der arbeitenden Muskulatur zur Haut umgeleitet – bis zu **50% deines Blutflusses** können sich in Richtung Peripherie verschieben, bevor du überhaupt sichtbar schwitzt.

Der Stanford-Professor H. Craig Heller und sein Forschungsteam zeigten, dass das Kühlen der Muskulatur zwischen Kraft-Einheiten die Leistung deutlich steigern kann.

## Wissenschaftliche Quellen

- H. Craig Heller (Stanford University) — Performance enhancement with controlled cooling (2012): https://pubmed.ncbi.nlm.nih.gov/22076097/
- Périard, Eijsvogels & Daanen (2021) — [Exercise under heat stress](https://pubmed.ncbi.nlm.nih.gov/33829868/), Physiological Reviews 101(4):1873-1979.
- Kenny et al. (2022) — Heat stress and exercise performance: https://pubmed.ncbi.nlm.nih.gov/35020830/`,
			},
			"pl": {
				Title: "Krew powinna trafiać do trenowanego mięśnia — nie na obwód, aby oddawać ciepło!",
				Excerpt: "Pot może wyglądać jak dowód dobrego treningu, ale w treningu siłowym często oznacza stres " +
					"cieplny, który odciąga krew od mięśni i ogranicza wydajność oraz wzrost.",
				Body: `Przez dekady pot był uznawany za dowód dobrego treningu. Im więcej się pocisz, tym ciężej pracowałeś — tak sądziliśmy.

Współczesna fizjologia wysiłku często pokazuje coś odwrotnego: pocenie jest oznaką nieefektywności, a nie skuteczności — szczególnie w treningu siłowym.

Gdy się pocisz, organizm próbuje się schłodzić. Krew jest przekierowywana z pracujących mięśni do skóry — nawet do **50% przepływu krwi** może przesunąć się na obwód, zanim jeszcze zauważysz pot.

Profesor Stanfordu H. Craig Heller i jego zespół pokazali, że chłodzenie mięśni pomiędzy seriami może znacząco poprawiać wyniki.

## Źródła naukowe

- H. Craig Heller (Stanford University) — Performance enhancement with controlled cooling (2012): https://pubmed.ncbi.nlm.nih.gov/22076097/
- Périard, Eijsvogels & Daanen (2021) — [Exercise under heat stress](https://pubmed.ncbi.nlm.nih.gov/33829868/), Physiological Reviews 101(4):1873-1979.
- Kenny et al. (2022) — Heat stress and exercise performance: https://pubmed.ncbi.nlm.nih.gov/35020830/`,
			},
		},
	},
	{
		Slug:  "why-momentum-causes-exercise-injury",
		Title: "Why Momentum Is the Main Source of Exercise Injury – and How Electromechanical Resistance Solves It",
		Excerpt: "Discover how momentum in traditional weightlifting causes injuries, and how electromechanical " +
			"resistance systems eliminate this risk while maximizing strength gains.",
		Body: `When we lift weights, swing kettlebells, or even perform machine-based repetitions, we are not just fighting gravity — we are fighting momentum.

Momentum is the tendency of a moving mass to keep moving once it is in motion. The faster and heavier you move, the greater the momentum — and the less control you have over the load.

## The Physics of Injury

**F = m × a** (Force equals mass times acceleration)

When you accelerate a load, its effective force increases. When you decelerate it, the same force is suddenly reversed, often doubling or tripling joint stress. Most resistance training injuries occur not at maximum exertion, but when momentum and fatigue intersect.

## How Electromechanical Resistance Eliminates Momentum

- **No Free Acceleration**: The motor adjusts instantly to your speed. You cannot "throw" the weight.
- **Constant Force Curve**: Resistance follows your ideal muscle strength curve throughout the entire range of motion.
- **Dynamic Feedback**: Sensors measure velocity and position thousands of times per second.
- **Eccentric Safety**: The most injury-prone phase of exercise — lowering the weight — is precisely regulated.

## References

1. Escamilla et al., [Effects of technique variations on knee biomechanics](https://pubmed.ncbi.nlm.nih.gov/11528346/) — Med Sci Sports Exerc.
2. Wang et al., "Effect of isokinetic muscle strength training" — Front Physiol 2023: https://pubmed.ncbi.nlm.nih.gov/37795267/
3. Crowell et al., "Gait retraining to reduce lower extremity loading in runners" — JOSPT: https://pubmed.ncbi.nlm.nih.gov/20888675/`,
		CoverImage: "/momentum-cover.png",
		CoverImageI18n: map[string]string{
			"de": "/momentum-cover.de.png",
			"pl": "/momentum-cover.pl.png",
		},
		Date:     time.Date(2024, 12, 13, 0, 0, 0, 0, time.UTC),
		Author:   model.Author{Name: "Thomas Stämpfli", Avatar: "/thomas-stampfli.png"},
		ReadTime: "3 min read",
		Translations: map[string]model.Translation{
			"de": {
				Title: "Warum Schwung (Momentum) die Hauptquelle für Trainingsverletzungen ist – und wie elektromechanischer Widerstand das löst",
				Excerpt: "Erfahre, wie Schwung bei klassischen Gewichten Verletzungsrisiken erhöht und wie " +
					"elektromechanischer Widerstand Training kontrollierter und sicherer macht.",
				Body: `Wenn wir Gewichte heben, Kettlebells schwingen oder Wiederholungen an Maschinen ausführen, kämpfen wir nicht nur gegen die Schwerkraft – wir kämpfen gegen den Schwung.

## Die Physik der Verletzung

**F = m × a** (Kraft = Masse × Beschleunigung)

Wenn du eine Last beschleunigst, steigt die wirkende Kraft. Wenn du sie abbremst, kehrt sich dieselbe Kraft abrupt um und kann Gelenkbelastungen verdoppeln oder verdreifachen.

## Wie elektromechanischer Widerstand Schwung eliminiert

- **Keine freie Beschleunigung**: Der Motor reagiert sofort auf deine Geschwindigkeit.
- **Konstante Kraftkurve**: Der Widerstand folgt der idealen Kraftkurve deiner Muskulatur.
- **Dynamisches Feedback**: Sensoren messen Geschwindigkeit und Position tausende Male pro Sekunde.
- **Sichere Exzentrik**: Die verletzungsanfällige Abwärtsphase wird präzise geregelt.

## Quellen

1. Escamilla et al. — https://pubmed.ncbi.nlm.nih.gov/11528346/
2. Wang et al. — https://pubmed.ncbi.nlm.nih.gov/37795267/
3. Crowell et al. — https://pubmed.ncbi.nlm.nih.gov/20888675/`,
			},
			"pl": {
				Title: "Dlaczego pęd (momentum) jest główną przyczyną kontuzji na treningu – i jak rozwiązuje to opór elektromechaniczny",
				Excerpt: "Zobacz, jak „bujanie” ciężarem zwiększa ryzyko urazu i jak opór elektromechaniczny pozwala " +
					"trenować intensywnie, ale precyzyjnie i bezpiecznie.",
				Body: `Gdy podnosimy ciężary, wymachujemy kettlebellem czy wykonujemy powtórzenia na maszynach, nie walczymy tylko z grawitacją — walczymy z pędem.

## Fizyka urazu

**F = m × a** (Siła = masa × przyspieszenie)

Gdy przyspieszasz ciężar, rośnie działająca siła. Gdy go wyhamowujesz, ta sama siła gwałtownie się odwraca i potrafi podwoić lub potroić obciążenie stawów.

## Jak opór elektromechaniczny eliminuje pęd

- **Brak swobodnego przyspieszenia**: silnik natychmiast reaguje na prędkość.
- **Stała krzywa oporu**: opór podąża za idealną krzywą siły mięśni.
- **Dynamiczny feedback**: czujniki mierzą prędkość i pozycję tysiące razy na sekundę.
- **Bezpieczna faza ekscentryczna**: faza opuszczania jest precyzyjnie kontrolowana.

## Źródła

1. Escamilla et al. — https://pubmed.ncbi.nlm.nih.gov/11528346/
2. Wang et al. — https://pubmed.ncbi.nlm.nih.gov/37795267/
3. Crowell et al. — https://pubmed.ncbi.nlm.nih.gov/20888675/`,
			},
		},
	},
}
