package builtin

// Shaders internos. Todas as matrizes chegam em convenção mão-esquerda com
// profundidade em [0, 1]; a profundidade vista da luz é empacotada em RGBA8
// porque o alvo de sombra é uma textura de cor.

const (
	ShaderLitVS        = "lit_vs"
	ShaderLitPS        = "lit_ps"
	ShaderShadowVS     = "shadow_vs"
	ShaderShadowDepth  = "shadow_depth_ps"
	ShaderSkyVS        = "sky_vs"
	ShaderSkyPS        = "sky_ps"
	ShaderFullscreenVS = "fullscreen_vs"
	ShaderPostPS       = "post_ps"
)

// shaderSlots são os slots textura -> sampler que cada pixel shader lê.
var shaderSlots = map[string]map[string]string{
	ShaderLitPS:  {"Albedo": "BasicSampler", "ShadowMap": "ShadowSampler"},
	ShaderSkyPS:  {"SkyTexture": "BasicSampler"},
	ShaderPostPS: {"SceneTexture": "PostSampler"},
}

var shaderSources = map[string]string{
	ShaderLitVS:        litVertexShader,
	ShaderLitPS:        litPixelShader,
	ShaderShadowVS:     shadowVertexShader,
	ShaderShadowDepth:  shadowDepthShader,
	ShaderSkyVS:        skyVertexShader,
	ShaderSkyPS:        skyPixelShader,
	ShaderFullscreenVS: fullscreenVertexShader,
	ShaderPostPS:       postPixelShader,
}

// Shader devolve a fonte GLSL de um shader interno.
func Shader(name string) (string, bool) {
	src, ok := shaderSources[name]
	return src, ok
}

// ShaderSlots devolve uma cópia dos slots declarados por um shader interno
// (nil se ele não lê texturas).
func ShaderSlots(name string) map[string]string {
	slots, ok := shaderSlots[name]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(slots))
	for k, v := range slots {
		out[k] = v
	}
	return out
}

func ShaderNames() []string {
	m := make(map[string]bool, len(shaderSources))
	for k := range shaderSources {
		m[k] = true
	}
	return sortedKeys(m)
}

const litVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 world;
uniform mat4 view;
uniform mat4 projection;
uniform mat4 worldInvTranspose;
uniform mat4 lightView;
uniform mat4 lightProjection;
uniform vec2 uvScale;
uniform vec2 uvOffset;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec2 fragTexCoord;
out vec4 fragShadowPos;

void main()
{
    vec4 worldPos = world * vec4(vertexPosition, 1.0);
    fragWorldPos = worldPos.xyz;
    fragNormal = normalize(mat3(worldInvTranspose) * vertexNormal);
    fragTexCoord = vertexTexCoord * uvScale + uvOffset;
    fragShadowPos = lightProjection * lightView * worldPos;
    gl_Position = projection * view * worldPos;
}
`

const litPixelShader = `
#version 330

#define MAX_LIGHTS 8
#define LIGHT_DIRECTIONAL 0
#define LIGHT_POINT 1
#define LIGHT_SPOT 2

in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragTexCoord;
in vec4 fragShadowPos;

// 4 vec4 por luz: (tipo, dir), (alcance, pos), (intensidade, cor), (cone)
uniform vec4 lights[MAX_LIGHTS * 4];
uniform float lightCount;
uniform float shadowLight;
uniform vec3 ambientColor;
uniform vec3 cameraPosition;

uniform vec4 colorTint;
uniform float roughness;
uniform sampler2D Albedo;
uniform sampler2D ShadowMap;

out vec4 finalColor;

float unpackDepth(vec4 rgba)
{
    return dot(rgba, vec4(1.0, 1.0 / 255.0, 1.0 / 65025.0, 1.0 / 16581375.0));
}

// PCF 3x3; fora do mapa conta como iluminado
float shadowFactor()
{
    vec3 ndc = fragShadowPos.xyz / fragShadowPos.w;
    vec2 uv = ndc.xy * 0.5 + 0.5;
    if (uv.x < 0.0 || uv.x > 1.0 || uv.y < 0.0 || uv.y > 1.0 || ndc.z > 1.0) return 1.0;

    vec2 texel = 1.0 / vec2(textureSize(ShadowMap, 0));
    float lit = 0.0;
    for (int x = -1; x <= 1; x++) {
        for (int y = -1; y <= 1; y++) {
            float stored = unpackDepth(texture(ShadowMap, uv + vec2(x, y) * texel));
            lit += (ndc.z - 0.002 <= stored) ? 1.0 : 0.0;
        }
    }
    return lit / 9.0;
}

vec3 shade(int i, vec3 n, vec3 v, vec3 surface)
{
    vec4 r0 = lights[i * 4];
    vec4 r1 = lights[i * 4 + 1];
    vec4 r2 = lights[i * 4 + 2];
    vec4 r3 = lights[i * 4 + 3];

    int type = int(r0.x + 0.5);
    vec3 dir = normalize(r0.yzw);
    float range = max(r1.x, 0.0001);
    vec3 toLight;
    float atten = 1.0;

    if (type == LIGHT_DIRECTIONAL) {
        toLight = -dir;
    } else {
        vec3 d = r1.yzw - fragWorldPos;
        float dist = length(d);
        toLight = d / max(dist, 0.0001);
        atten = clamp(1.0 - (dist * dist) / (range * range), 0.0, 1.0);
        atten *= atten;
        if (type == LIGHT_SPOT) {
            float cosAngle = dot(-toLight, dir);
            atten *= smoothstep(cos(r3.y), cos(r3.x), cosAngle);
        }
    }

    float diffuse = max(dot(n, toLight), 0.0);
    vec3 r = reflect(-toLight, n);
    float spec = pow(max(dot(r, v), 0.0), mix(256.0, 4.0, roughness)) * (1.0 - roughness);
    spec *= step(0.0001, diffuse);

    return (diffuse * surface + vec3(spec)) * r2.yzw * r2.x * atten;
}

void main()
{
    vec4 albedo = texture(Albedo, fragTexCoord) * colorTint;
    vec3 n = normalize(fragNormal);
    vec3 v = normalize(cameraPosition - fragWorldPos);

    vec3 color = ambientColor * albedo.rgb;
    int count = int(lightCount + 0.5);
    int caster = int(shadowLight + 0.5);
    float shadow = shadowFactor();
    for (int i = 0; i < MAX_LIGHTS; i++) {
        if (i >= count) break;
        vec3 c = shade(i, n, v, albedo.rgb);
        if (i == caster && shadowLight >= 0.0) c *= shadow;
        color += c;
    }

    finalColor = vec4(color, albedo.a);
}
`

const shadowVertexShader = `
#version 330

in vec3 vertexPosition;

uniform mat4 world;
uniform mat4 view;
uniform mat4 projection;

out float lightDepth;

void main()
{
    vec4 pos = projection * view * world * vec4(vertexPosition, 1.0);
    lightDepth = pos.z / pos.w;
    gl_Position = pos;
}
`

const shadowDepthShader = `
#version 330

in float lightDepth;

out vec4 finalColor;

vec4 packDepth(float d)
{
    vec4 enc = fract(vec4(1.0, 255.0, 65025.0, 16581375.0) * d);
    enc -= enc.yzww * vec4(1.0 / 255.0, 1.0 / 255.0, 1.0 / 255.0, 0.0);
    return enc;
}

void main()
{
    finalColor = packDepth(clamp(lightDepth, 0.0, 0.99999));
}
`

const skyVertexShader = `
#version 330

in vec3 vertexPosition;

uniform mat4 view;
uniform mat4 projection;

out vec3 fragDirection;

void main()
{
    fragDirection = vertexPosition;
    // sem translação: o céu acompanha a câmera
    vec4 pos = projection * mat4(mat3(view)) * vec4(vertexPosition, 1.0);
    // z = w deixa o céu no plano distante
    gl_Position = pos.xyww;
}
`

const skyPixelShader = `
#version 330

in vec3 fragDirection;

uniform samplerCube SkyTexture;

out vec4 finalColor;

void main()
{
    finalColor = vec4(texture(SkyTexture, normalize(fragDirection)).rgb, 1.0);
}
`

const fullscreenVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;

void main()
{
    fragTexCoord = vertexTexCoord;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const postPixelShader = `
#version 330

in vec2 fragTexCoord;

uniform sampler2D SceneTexture;
uniform float blurRadius;
uniform float aberration;
uniform vec2 texelSize;

out vec4 finalColor;

vec3 blurSample(vec2 uv)
{
    int r = int(blurRadius);
    if (r <= 0) return texture(SceneTexture, uv).rgb;

    vec3 sum = vec3(0.0);
    float n = 0.0;
    for (int x = -r; x <= r; x++) {
        for (int y = -r; y <= r; y++) {
            sum += texture(SceneTexture, uv + vec2(x, y) * texelSize).rgb;
            n += 1.0;
        }
    }
    return sum / n;
}

void main()
{
    vec2 uv = fragTexCoord;
    vec3 color;
    if (aberration > 0.0) {
        vec2 offset = (uv - 0.5) * aberration;
        color.r = blurSample(uv + offset).r;
        color.g = blurSample(uv).g;
        color.b = blurSample(uv - offset).b;
    } else {
        color = blurSample(uv);
    }
    finalColor = vec4(color, 1.0);
}
`
