package oncology

import "testing"

func TestClassify_CancerType(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Пациент с диагнозом рак желудка", "желудок"},
		{"Хронический гастрит в анамнезе", "желудок"},
		{"Код диагноза C16", "желудок"},
		{"Колоректальный рак", "кишка"},
		// "прямая кишка" contains "кишка", so the broader group wins.
		{"Прямая кишка, C20", "кишка"},
		{"Образование в молочной железе", "молочная железа"},
		{"Диагноз C50", "молочная железа"},
		{"Меланома кожи", "не определен"},
		{"", "не определен"},
	}
	for _, tc := range cases {
		got := Classify(tc.text)
		if got.CancerType != tc.want {
			t.Errorf("Classify(%q).CancerType = %q, want %q", tc.text, got.CancerType, tc.want)
		}
	}
}

func TestClassify_Stage(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Опухоль T1, ранняя стадия", "I"},
		{"T2 без поражения узлов", "II"},
		{"Распространение T3, N+", "III"},
		{"Выявлены метастазы M1", "IV"},
		{"Статус неизвестен", "не определена"},
	}
	for _, tc := range cases {
		got := Classify(tc.text)
		if got.Stage != tc.want {
			t.Errorf("Classify(%q).Stage = %q, want %q", tc.text, got.Stage, tc.want)
		}
	}
}

func TestClassify_ExtractedInfo(t *testing.T) {
	got := Classify("Множественные метастазы в печени, N+")
	if !got.ExtractedInfo.HasMetastasis {
		t.Error("expected metastasis flag")
	}
	if !got.ExtractedInfo.LymphNodes {
		t.Error("expected lymph-node flag")
	}

	clean := Classify("Гастрит")
	if clean.ExtractedInfo.HasMetastasis || clean.ExtractedInfo.LymphNodes {
		t.Error("expected both flags unset")
	}
}

func TestClassify_Confidence(t *testing.T) {
	if got := Classify("любой текст").Confidence; got != 0.8 {
		t.Errorf("expected fixed confidence 0.8, got %v", got)
	}
}
