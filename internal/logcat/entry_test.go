package logcat

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Entry
		wantOK bool
	}{
		{
			name: "canonical threadtime line",
			line: `06-12 14:02:11.481  1712  3240 W ActivityManager: Permission Denial: starting Intent`,
			want: Entry{
				Timestamp: "06-12 14:02:11.481",
				PID:       1712,
				TID:       3240,
				Priority:  PriorityWarn,
				Tag:       "ActivityManager",
				Message:   "Permission Denial: starting Intent",
			},
			wantOK: true,
		},
		{
			name: "padded tag",
			line: `06-12 14:03:40.118  1712  2290 W AppOps  : Noting op 26 rejected`,
			want: Entry{
				Timestamp: "06-12 14:03:40.118",
				PID:       1712,
				TID:       2290,
				Priority:  PriorityWarn,
				Tag:       "AppOps",
				Message:   "Noting op 26 rejected",
			},
			wantOK: true,
		},
		{
			name: "empty message",
			line: `06-12 14:03:41.000   512   512 I ServiceManager: `,
			want: Entry{
				Timestamp: "06-12 14:03:41.000",
				PID:       512,
				TID:       512,
				Priority:  PriorityInfo,
				Tag:       "ServiceManager",
				Message:   "",
			},
			wantOK: true,
		},
		{
			name: "buffer banner",
			line: `--------- beginning of main`,
		},
		{
			name: "wrapped stack frame",
			line: `	at android.os.Parcel.createException(Parcel.java:2071)`,
		},
		{
			name: "brief format not accepted",
			line: `W/ActivityManager( 1712): Permission Denial`,
		},
		{
			name: "empty line",
			line: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			tt.want.Raw = tt.line
			if got != tt.want {
				t.Errorf("Parse() =\n  %+v\nwant\n  %+v", got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in     string
		want   Priority
		wantOK bool
	}{
		{"W", PriorityWarn, true},
		{"w", PriorityWarn, true},
		{" e ", PriorityError, true},
		{"V", PriorityVerbose, true},
		{"X", 0, false},
		{"WE", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParsePriority(%q) = %c, %v; want %c, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPriorityAtLeast(t *testing.T) {
	order := []Priority{PriorityVerbose, PriorityDebug, PriorityInfo, PriorityWarn, PriorityError, PriorityFatal}
	for i := 0; i < len(order)-1; i++ {
		if order[i].AtLeast(order[i+1]) {
			t.Errorf("%c should rank below %c", order[i], order[i+1])
		}
		if !order[i+1].AtLeast(order[i]) {
			t.Errorf("%c should rank above %c", order[i+1], order[i])
		}
	}
}
