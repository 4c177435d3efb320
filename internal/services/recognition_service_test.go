package services

import "testing"

func TestParseRecognitionPlainJSON(t *testing.T) {
	content := `{"customer":"刘正彬","destination":"成都","plate":"川A12345","driver":"老张","date":"2025.3.1",
"items":[{"product":"红毛","spec_jin":"22","count":"100","price_per_ton":"12000"}]}`

	got, err := parseRecognition(content)
	if err != nil {
		t.Fatalf("parseRecognition: %v", err)
	}
	if got.Customer != "刘正彬" || got.Destination != "成都" {
		t.Errorf("unexpected header: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Product != "红毛" || got.Items[0].Count != "100" {
		t.Errorf("unexpected items: %+v", got.Items)
	}
}

func TestParseRecognitionCodeFence(t *testing.T) {
	content := "识别结果如下：\n```json\n{\"customer\":\"张三\",\"items\":[]}\n```\n以上。"

	got, err := parseRecognition(content)
	if err != nil {
		t.Fatalf("parseRecognition: %v", err)
	}
	if got.Customer != "张三" {
		t.Errorf("customer = %q", got.Customer)
	}
}

func TestParseRecognitionNoJSON(t *testing.T) {
	for _, content := range []string{"", "无法识别这张图片", "}{"} {
		if _, err := parseRecognition(content); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}

func TestParseRecognitionBadJSON(t *testing.T) {
	if _, err := parseRecognition(`{"customer": }`); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
